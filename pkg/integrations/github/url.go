package github

import (
	"strings"

	"github.com/matzehuels/githot/pkg/integrations"
)

// BuildURL assembles a search URL of the form
//
//	<base>/search/<type>?<k1>=<v1>&<k2>=<v2>...
//
// Exactly one slash separates base from "search". Keys and values are
// percent-encoded, so reserved characters in a value cannot break the query
// string, and params keep their order.
func BuildURL(base string, typ ResourceType, params []Param) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteString("/search/")
	b.WriteString(string(typ))
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(integrations.URLEncode(p.Key))
		b.WriteByte('=')
		b.WriteString(integrations.URLEncode(p.Value))
	}
	return b.String()
}
