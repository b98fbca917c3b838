// Package refresh runs the two board flows against the GitHub search API.
//
// The repository flow lists repositories created in the previous calendar
// month, sorted by stars. The user flow lists accounts created within the last
// year, sorted by followers, and then fetches every profile concurrently.
//
// Each flow renders into a [View] only on complete success. Failures go to a
// single [ErrorHandler] and leave the view as it was. Flows never retry.
//
//	o := refresh.New(client, board, refresh.WithLogger(logger))
//	go o.Run(ctx, refresh.DefaultInterval)
//	// ...
//	o.Trigger(ctx, refresh.Users)
package refresh
