/*
Package otconfig reads the configuration files which drive a config-based
rebuild of a font.

A configuration is a YAML document with four optional sections:

	general:
	  version: 1.2
	  embeddingRestriction: 1    # 0 installable, 1 editable, 2 preview & print, 3 restricted
	style:
	  styleLink: 3               # 0 none, 1 regular, 2 bold, 3 italic, 4 bold italic
	  widthScale: 5              # 1 (ultra-condensed) .. 9 (ultra-expanded)
	  weightScale: 4             # 1 (ultralight) .. 10 (black)
	  italicAngle: -12
	  isMonospaced: false
	  underlinePosition: -200
	  underlineThickness: 100
	metrics:
	  hheaAscender: 880
	  typoDescender: -120
	name:
	  en:
	    fontFamily: Example Sans
	    fontSubfamily: Italic
	  fr:
	    fontFamily: Exemple Sans

Every value is optional. Accessors return ot.Option values, which are None
for values not present in the file; out-of-range codes are None as well.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otconfig

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otrebuild.config'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.config")
}
