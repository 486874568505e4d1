package req

type AnnounceRequest struct {
	Title   string   `json:"title" validate:"required,max=120"`
	Body    string   `json:"body" validate:"required"`
	UserIDs []string `json:"userIds,omitempty"` // empty means every online user
}
