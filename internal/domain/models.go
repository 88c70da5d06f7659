package domain

// Account represents a searchable GitHub user or organization
type Account struct {
	ID              int64  `json:"id"`
	Login           string `json:"login"`
	RepositoriesURL string `json:"repos_url"`
}

// Repository represents a project owned by an account
type Repository struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StarCount   int     `json:"stargazers_count"`
}

// DescriptionOrDefault returns the description, or a placeholder when the
// repository has none
func (r Repository) DescriptionOrDefault() string {
	if r.Description == nil || *r.Description == "" {
		return "No description"
	}
	return *r.Description
}
