// Copyright 2025 coregx. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package negotiate

import "strings"

// serverTypeDigest is the preprocessed form of one server-offered media
// type (spec §3, §4.4). Digestion runs once at Matcher construction.
type serverTypeDigest struct {
	Type         string
	Subtype      string
	Parameters   map[string]string
	OriginalType string
}

// digestServerType splits s at the first ';' into the type/subtype part and
// parameters, then splits the former at '/' and each parameter at its first
// '='. This digester is lax by design (spec §4.4): the server supplies its
// own values, not attacker-controlled input, so it does not validate the
// way parseAccept must.
func digestServerType(s string) serverTypeDigest {
	d := serverTypeDigest{OriginalType: s}

	typePart := s
	var paramsPart string
	if idx := strings.IndexByte(s, ';'); idx != -1 {
		typePart = s[:idx]
		paramsPart = s[idx+1:]
	}

	if idx := strings.IndexByte(typePart, '/'); idx != -1 {
		d.Type = typePart[:idx]
		d.Subtype = typePart[idx+1:]
	} else {
		d.Type = typePart
	}

	if paramsPart != "" {
		d.Parameters = make(map[string]string)
		for _, raw := range strings.Split(paramsPart, ";") {
			if idx := strings.IndexByte(raw, '='); idx != -1 {
				d.Parameters[raw[:idx]] = raw[idx+1:]
			}
		}
	}

	return d
}

// digestServerTypes digests an ordered list of server media type strings,
// preserving registration order (semantically significant — spec §4.5
// uses it as the match tie-break).
func digestServerTypes(types []string) []serverTypeDigest {
	digests := make([]serverTypeDigest, len(types))
	for i, t := range types {
		digests[i] = digestServerType(t)
	}
	return digests
}
