package responses

type Student struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
