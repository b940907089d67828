package pagination

// Params carries the limit/offset pair parsed from a list request
type Params struct {
	Limit  int
	Offset int
}

// Meta is the pagination block returned alongside list results
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// builds response metadata from the applied params and the total row count
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}

// clamps raw query values into usable params: non-positive limits fall
// back to defaultLimit, limits above maxLimit are capped, negative
// offsets become zero
func DefaultParams(limit, offset, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return Params{
		Limit:  limit,
		Offset: offset,
	}
}
