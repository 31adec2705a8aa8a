package _responses

type RedirectResponse struct {
	ToUrl string
}

func Redirect(toUrl string) *RedirectResponse {
	return &RedirectResponse{ToUrl: toUrl}
}
