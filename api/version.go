package api

type EmptyRequest struct{}

type Version struct {
	Version string `json:"version"`
}
