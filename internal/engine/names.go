package engine

import "fmt"

var familyNames = []string{
	"KUSANAGI", "TANAKA", "SATO", "SUZUKI", "YAMADA", "JONES", "SMITH", "LEE", "WONG",
	"BOND", "STARK", "WAYNE", "KENT", "ALLEN", "FOX", "WOLF", "HAWK", "SNAKE",
}

var givenNames = []string{
	"01", "X", "NEO", "LEO", "RAY", "JAY", "KAI", "SKY", "ACE",
	"MAX", "REX", "ZED", "CY", "JAX", "ASH", "ROY", "TY",
}

// RandomName returns a call sign such as "HAWK-REX". Names are not unique.
func RandomName(src Source) string {
	family := familyNames[intn(src, len(familyNames))]
	given := givenNames[intn(src, len(givenNames))]
	return fmt.Sprintf("%s-%s", family, given)
}
