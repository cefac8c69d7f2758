package models

// Recipe is a single result returned by the recipe-search API. Only the
// identifier, title, and image URL are interpreted; any other fields in the
// response are ignored. The identifier is used as a display key only.
type Recipe struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}
