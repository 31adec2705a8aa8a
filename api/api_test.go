package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/storage"
)

type ApiSuite struct {
	suite.Suite
	conf    config.MainRepoConfig
	handler http.Handler
}

func (s *ApiSuite) SetupTest() {
	s.conf = config.NewDefaultMainConfig()
	s.conf.General.PublicBaseUrl = "https://portfolio.example.org"
	s.conf.Auth.JwtSecret = "test-secret-with-enough-entropy"
	s.conf.Auth.BcryptCost = 4
	s.conf.Uploads.Datastore = config.DatastoreConfig{
		Type:    config.DatastoreTypeFile,
		Options: map[string]string{"path": s.T().TempDir()},
	}
	config.Set(&s.conf)
	storage.Set(storage.NewMemoryStores())
	s.handler = buildRoutes()
}

func (s *ApiSuite) do(method string, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	return w
}

func (s *ApiSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	out := make(map[string]interface{})
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *ApiSuite) login() string {
	w := s.do("POST", "/api/auth/register", map[string]string{
		"email":     "Admin@Example.org ",
		"password":  "hunter22",
		"firstName": "Ada",
	}, "")
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	w = s.do("POST", "/api/auth/login", map[string]string{
		"email":    "admin@example.org",
		"password": "hunter22",
	}, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	res := s.decode(w)
	assert.Equal(s.T(), "Login successful", res["message"])
	assert.Equal(s.T(), "admin@example.org", res["user"].(map[string]interface{})["email"])
	token, _ := res["token"].(string)
	require.NotEmpty(s.T(), token)
	return token
}

func (s *ApiSuite) TestHealthz() {
	w := s.do("GET", "/healthz", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), true, s.decode(w)["ok"])
	assert.Equal(s.T(), "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(s.T(), "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
}

func (s *ApiSuite) TestPreflight() {
	w := s.do("OPTIONS", "/api/work", nil, "")
	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	assert.Contains(s.T(), w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func (s *ApiSuite) TestNotFoundAndMethodNotAllowed() {
	w := s.do("GET", "/api/nothing-here", nil, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "P_NOT_FOUND", s.decode(w)["errcode"])

	w = s.do("DELETE", "/api/about-me", nil, "")
	assert.Equal(s.T(), http.StatusMethodNotAllowed, w.Code)
	assert.Equal(s.T(), "P_METHOD_NOT_ALLOWED", s.decode(w)["errcode"])
}

func (s *ApiSuite) TestAdminRoutesRequireToken() {
	w := s.do("POST", "/api/work", map[string]string{"title": "x"}, "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Authentication Failed", s.decode(w)["error"])

	w = s.do("GET", "/api/admin/work", nil, "not-a-token")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "P_UNKNOWN_TOKEN", s.decode(w)["errcode"])
}

func (s *ApiSuite) TestWorkLifecycle() {
	token := s.login()

	w := s.do("POST", "/api/work", map[string]interface{}{
		"title":       "Launch video",
		"description": "A product launch",
		"type":        "youtube",
		"url":         "https://youtu.be/xyz?t=5",
	}, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	created := s.decode(w)
	id := created["id"].(string)
	assert.Equal(s.T(), "https://www.youtube.com/embed/xyz", created["embedUrl"])
	assert.Equal(s.T(), "https://img.youtube.com/vi/xyz/maxresdefault.jpg", created["thumbnailUrl"])
	assert.Equal(s.T(), true, created["visible"])

	w = s.do("GET", "/api/work", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "no-cache", w.Header().Get("Pragma"))
	var listed []map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(s.T(), listed, 1)
	assert.Equal(s.T(), id, listed[0]["id"])

	w = s.do("PATCH", "/api/work/"+id, map[string]interface{}{"visible": false}, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	updated := s.decode(w)
	assert.Equal(s.T(), true, updated["success"])
	assert.Equal(s.T(), false, updated["data"].(map[string]interface{})["visible"])

	w = s.do("GET", "/api/work/public", nil, "")
	assert.Equal(s.T(), "[]", strings.TrimSpace(w.Body.String()))
	w = s.do("GET", "/api/work/"+id, nil, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.do("GET", "/api/admin/work", nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(s.T(), listed, 1)

	w = s.do("DELETE", "/api/work/"+id, nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Work item deleted successfully", s.decode(w)["message"])

	w = s.do("DELETE", "/api/work/"+id, nil, token)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "Work item not found", s.decode(w)["error"])
}

func (s *ApiSuite) TestWorkValidation() {
	token := s.login()

	w := s.do("POST", "/api/work", map[string]interface{}{
		"title": "",
		"type":  "short-form",
	}, token)
	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	res := s.decode(w)
	assert.Equal(s.T(), "P_INVALID_INPUT", res["errcode"])
	assert.Equal(s.T(), "Invalid input data", res["error"])
	assert.NotEmpty(s.T(), res["details"])

	r := httptest.NewRequest("POST", "/api/work", strings.NewReader("{not json"))
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, r)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *ApiSuite) TestEmbedPreview() {
	w := s.do("GET", "/api/embeds/preview", nil, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.do("GET", "/api/embeds/preview?url="+url.QueryEscape("https://www.tiktok.com/@user/video/1234567890"), nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
	res := s.decode(w)
	assert.Equal(s.T(), "tiktok", res["platform"])
	assert.Equal(s.T(), "1234567890", res["contentId"])
	assert.Equal(s.T(), "", res["embedUrl"])
	assert.Equal(s.T(), "https://picsum.photos/400/711?random=1234567890&blur=0", res["previewThumbnailUrl"])
}

func (s *ApiSuite) TestSiteContent() {
	w := s.do("GET", "/api/site-content", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
	res := s.decode(w)
	assert.Nil(s.T(), res["about"])
	assert.Nil(s.T(), res["contact"])

	token := s.login()
	w = s.do("PUT", "/api/site-content", map[string]interface{}{
		"type":    "contact",
		"content": map[string]string{"email": "hi@example.org", "phone": "555-0100"},
	}, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Equal(s.T(), true, s.decode(w)["success"])

	w = s.do("PUT", "/api/site-content", map[string]interface{}{
		"type":    "contact",
		"content": map[string]string{"email": "nope", "phone": ""},
	}, token)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.do("GET", "/api/site-content", nil, "")
	res = s.decode(w)
	assert.Equal(s.T(), "hi@example.org", res["contact"].(map[string]interface{})["email"])
}

func (s *ApiSuite) TestAboutMe() {
	w := s.do("GET", "/api/about-me", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), s.conf.Content.DefaultAboutText, s.decode(w)["content"])

	token := s.login()
	w = s.do("PUT", "/api/about-me", map[string]string{"content": "Hello there"}, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Equal(s.T(), "Hello there", s.decode(w)["content"])

	w = s.do("PUT", "/api/about-me", map[string]string{"content": "  "}, token)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.do("GET", "/api/about-me", nil, "")
	assert.Equal(s.T(), "Hello there", s.decode(w)["content"])
}

func (s *ApiSuite) TestRegistration() {
	s.login()

	w := s.do("POST", "/api/auth/register", map[string]string{
		"email":     "admin@example.org",
		"password":  "hunter22",
		"firstName": "Ada",
	}, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Email already exists", s.decode(w)["error"])

	w = s.do("POST", "/api/auth/login", map[string]string{
		"email":    "admin@example.org",
		"password": "wrong-password",
	}, "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Invalid email or password", s.decode(w)["error"])

	s.conf.Auth.AllowRegistration = false
	config.Set(&s.conf)
	w = s.do("POST", "/api/auth/register", map[string]string{
		"email":     "other@example.org",
		"password":  "hunter22",
		"firstName": "Bo",
	}, "")
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func (s *ApiSuite) TestAuthRateLimit() {
	s.conf.Auth.RateLimit.MaxRequests = 2
	s.conf.Auth.RateLimit.WindowSeconds = 3600
	config.Set(&s.conf)

	creds := map[string]string{"email": "who@example.org", "password": "whatever"}
	assert.Equal(s.T(), http.StatusUnauthorized, s.do("POST", "/api/auth/login", creds, "").Code)
	assert.Equal(s.T(), http.StatusUnauthorized, s.do("POST", "/api/auth/login", creds, "").Code)

	w := s.do("POST", "/api/auth/login", creds, "")
	assert.Equal(s.T(), http.StatusTooManyRequests, w.Code)
	assert.Equal(s.T(), "P_LIMIT_EXCEEDED", s.decode(w)["errcode"])
}

func (s *ApiSuite) TestUploadAndServe() {
	token := s.login()

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 64; x++ {
		img.Set(x, x%48, color.RGBA{R: 200, A: 255})
	}
	pngBytes := &bytes.Buffer{}
	require.NoError(s.T(), png.Encode(pngBytes, img))

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(s.T(), err)
	_, err = part.Write(pngBytes.Bytes())
	require.NoError(s.T(), err)
	require.NoError(s.T(), mw.Close())

	r := httptest.NewRequest("POST", "/api/upload", body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	res := s.decode(w)
	assert.Equal(s.T(), true, res["success"])
	assert.EqualValues(s.T(), 800, res["width"])
	assert.EqualValues(s.T(), 450, res["height"])
	mediaUrl, err := url.Parse(res["url"].(string))
	require.NoError(s.T(), err)
	assert.True(s.T(), strings.HasPrefix(mediaUrl.Path, "/media/images/"))

	w = s.do("GET", mediaUrl.Path, nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "image/jpeg", w.Header().Get("Content-Type"))
	assert.NotZero(s.T(), w.Body.Len())

	w = s.do("GET", "/media/images/missing.jpg", nil, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *ApiSuite) TestUploadWithoutFile() {
	token := s.login()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(s.T(), mw.WriteField("note", "nothing attached"))
	require.NoError(s.T(), mw.Close())

	r := httptest.NewRequest("POST", "/api/upload", body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "No file provided", s.decode(w)["error"])
}

func TestApiSuite(t *testing.T) {
	suite.Run(t, new(ApiSuite))
}
