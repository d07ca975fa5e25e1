package dto

// TagDTO is the tag projection.
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagUsageDTO is a tag with its model count, for the most-used listing.
type TagUsageDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ModelCount int64  `json:"modelCount"`
}

// TagSuggestDTO requests LLM tag suggestions for a description.
type TagSuggestDTO struct {
	ModelName   string `json:"modelName" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"required,min=10,max=2000"`
}
