package ghldomain

type Contact struct {
	ID                    string         `json:"id"`
	FirstName             string         `json:"firstName,omitempty"`
	LastName              string         `json:"lastName,omitempty"`
	Email                 string         `json:"email,omitempty"`
	Source                string         `json:"source,omitempty"`
	AttributionSource     map[string]any `json:"attributionSource,omitempty"`
	LastAttributionSource map[string]any `json:"lastAttributionSource,omitempty"`
	DateAdded             string         `json:"dateAdded,omitempty"`
}

type ContactResponse struct {
	Contact Contact `json:"contact"`
}

// Attributions monta a lista de atribuições do contato: a primeira origem e depois a última
func (c Contact) Attributions() []map[string]any {
	var out []map[string]any

	if len(c.AttributionSource) > 0 {
		entry := copyEntry(c.AttributionSource)
		entry["isFirst"] = true
		out = append(out, entry)
	}

	if len(c.LastAttributionSource) > 0 {
		entry := copyEntry(c.LastAttributionSource)
		entry["isLast"] = true
		out = append(out, entry)
	}

	return out
}

func copyEntry(in map[string]any) map[string]any {
	out := make(map[string]any, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
