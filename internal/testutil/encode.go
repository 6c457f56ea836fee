package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/rangeeval/internal/config"
)

// encodeAll renders values in every format, skipping the omitted field.
// Non-numeric values are quoted where the format needs it.
func encodeAll(values map[string]string, omit string) map[string]string {
	var names []string
	for _, f := range config.Fields {
		if f.Name != omit {
			names = append(names, f.Name)
		}
	}

	var js, yml, xml, txt, hcl []string
	var row []string
	for _, name := range names {
		v := values[name]
		js = append(js, fmt.Sprintf("%q:%s", name, jsonLiteral(v)))
		yml = append(yml, fmt.Sprintf("%s: %s", name, v))
		xml = append(xml, fmt.Sprintf("  <%s>%s</%s>", name, v, name))
		row = append(row, v)
		txt = append(txt, name+"="+v)
		hcl = append(hcl, fmt.Sprintf("%s = %s", name, jsonLiteral(v)))
	}

	return map[string]string{
		"config.json": "{" + strings.Join(js, ",") + "}",
		"config.yaml": strings.Join(yml, "\n") + "\n",
		"config.xml":  "<config>\n" + strings.Join(xml, "\n") + "\n</config>\n",
		"config.csv":  strings.Join(names, ",") + "\n" + strings.Join(row, ",") + "\n",
		"config.txt":  strings.Join(txt, " ") + "\n",
		"config.hcl":  strings.Join(hcl, "\n") + "\n",
	}
}

func jsonLiteral(v string) string {
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v
	}
	return strconv.Quote(v)
}
