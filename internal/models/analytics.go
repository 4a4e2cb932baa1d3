package models

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalPosts    int64   `json:"total_posts"`
	TotalViews    int64   `json:"total_views"`
	TotalComments int64   `json:"total_comments"`
	LatestPosts   []*Post `json:"latest_posts"`
}
