package listing

import "strings"

// DecodeFotos splits a stored photo CSV into its ordered reference list.
// Entries are trimmed and empties dropped, so decoding an already-clean
// encoding is idempotent.
func DecodeFotos(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	fotos := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fotos = append(fotos, p)
		}
	}
	return fotos
}

// EncodeFotos joins an ordered reference list back into the CSV column
// format. Order is significant: the first entry is the cover photo.
func EncodeFotos(fotos []string) string {
	clean := make([]string, 0, len(fotos))
	for _, f := range fotos {
		if f = strings.TrimSpace(f); f != "" {
			clean = append(clean, f)
		}
	}
	return strings.Join(clean, ",")
}
