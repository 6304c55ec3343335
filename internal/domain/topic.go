package domain

// Topic is a named category that articles belong to. Topics are seed
// data: the API reads them but never creates, updates, or deletes them.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
