package games

type SearchGamesRequest struct {
	Q string `form:"q" validate:"required"`
}

// FilterGamesRequest narrows the catalog by any combination of the
// three filters; the handler rejects requests that set none of them.
type FilterGamesRequest struct {
	ReleaseDate string `form:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Platform    *int64 `form:"platform" validate:"omitempty,min=1"`
	Genre       *int64 `form:"genre" validate:"omitempty,min=1"`
}

func (r FilterGamesRequest) Empty() bool {
	return r.ReleaseDate == "" && r.Platform == nil && r.Genre == nil
}
