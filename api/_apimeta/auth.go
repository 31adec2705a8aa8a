package _apimeta

type UserInfo struct {
	UserId      string
	Email       string
	FirstName   string
	AccessToken string
}

func (u UserInfo) IsAuthenticated() bool {
	return u.UserId != ""
}
