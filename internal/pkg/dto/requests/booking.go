package requests

type CreateBooking struct {
	Client string `json:"client" validate:"required"`
	Start  string `json:"start" validate:"required,datetime=2006-01-02 15:04"`
	End    string `json:"end" validate:"required,datetime=2006-01-02 15:04"`
}
