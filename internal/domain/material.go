package domain

// Material is one owned-inventory entry reported by the account material
// storage endpoint.
type Material struct {
	ID       ItemID `json:"id"`
	Category int    `json:"category"`
	Binding  string `json:"binding,omitempty"`
	Count    int    `json:"count"`
}
