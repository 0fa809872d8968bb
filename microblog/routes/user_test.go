package routes

import (
	"context"
	"microblog/microblog/config"
	"microblog/microblog/controllers"
	"microblog/microblog/sources/psql/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Minimal stores backing the follow endpoints. The graph semantics get their
// own coverage in the controllers and dao packages; this test pins the HTTP
// policy layered on top, in particular the self-follow rejection.
type graphState struct {
	users map[int]*models.User
	edges map[[2]int]bool
}

type stubUsers struct{ st *graphState }

func (s stubUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return s.st.users[id], nil
}
func (s stubUsers) GetByEmail(context.Context, string) (*models.User, error)    { return nil, nil }
func (s stubUsers) GetByNickname(context.Context, string) (*models.User, error) { return nil, nil }
func (s stubUsers) Create(context.Context, *models.User) error                  { return nil }
func (s stubUsers) Update(context.Context, *models.User) error                  { return nil }
func (s stubUsers) TouchLastSeen(context.Context, int) error                    { return nil }

type stubFollows struct{ st *graphState }

func (s stubFollows) Create(_ context.Context, follower, followed int) error {
	k := [2]int{follower, followed}
	if s.st.edges[k] {
		return models.ErrAlreadyFollowing
	}
	s.st.edges[k] = true
	return nil
}
func (s stubFollows) Delete(_ context.Context, follower, followed int) (bool, error) {
	k := [2]int{follower, followed}
	existed := s.st.edges[k]
	delete(s.st.edges, k)
	return existed, nil
}
func (s stubFollows) Exists(_ context.Context, follower, followed int) (bool, error) {
	return s.st.edges[[2]int{follower, followed}], nil
}
func (s stubFollows) CountFollowers(context.Context, int) (int64, error) { return 0, nil }
func (s stubFollows) CountFollowing(context.Context, int) (int64, error) { return 0, nil }

type stubPosts struct{}

func (stubPosts) Create(context.Context, *models.Post) error { return nil }
func (stubPosts) ByAuthor(context.Context, int, int, int) ([]models.Post, error) {
	return nil, nil
}
func (stubPosts) Followed(context.Context, int, int, int) ([]models.Post, error) {
	return nil, nil
}
func (stubPosts) ByIDs(context.Context, []int) ([]models.Post, error) { return nil, nil }

func newTestRouter(t *testing.T) (http.Handler, *graphState) {
	t.Helper()
	st := &graphState{
		users: map[int]*models.User{
			5: {ID: 5, Nickname: "john", Email: "john@example.com"},
			6: {ID: 6, Nickname: "susan", Email: "susan@example.com"},
		},
		edges: map[[2]int]bool{{5, 5}: true, {6, 6}: true},
	}
	cfg := config.Config{JWTSecret: "secret"}
	social := controllers.NewSocialController(stubUsers{st}, stubFollows{st}, stubPosts{})
	userCtrl := controllers.NewUserController(stubUsers{st}, stubFollows{st})
	postCtrl := controllers.NewPostController(stubPosts{}, stubUsers{st}, nil)
	return UserRoutes(userCtrl, social, postCtrl, cfg, nil), st
}

func doReq(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	claims := jwt.MapClaims{"user_id": 5, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSelfFollowRejectedByHandler(t *testing.T) {
	h, st := newTestRouter(t)

	rr := doReq(t, h, "POST", "/5/follow")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("self follow: status = %d, want 400", rr.Code)
	}
	rr = doReq(t, h, "DELETE", "/5/follow")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("self unfollow: status = %d, want 400", rr.Code)
	}
	// The bootstrap self edge is untouched either way.
	if !st.edges[[2]int{5, 5}] {
		t.Error("self edge was removed by a rejected request")
	}
}

func TestFollowEndpoints(t *testing.T) {
	h, st := newTestRouter(t)

	rr := doReq(t, h, "POST", "/6/follow")
	if rr.Code != http.StatusOK {
		t.Fatalf("follow: status = %d, body %q", rr.Code, rr.Body.String())
	}
	if !st.edges[[2]int{5, 6}] {
		t.Error("edge not created")
	}

	rr = doReq(t, h, "POST", "/6/follow")
	if rr.Code != http.StatusConflict {
		t.Errorf("double follow: status = %d, want 409", rr.Code)
	}

	rr = doReq(t, h, "GET", "/6/follow")
	if rr.Code != http.StatusOK {
		t.Fatalf("probe: status = %d", rr.Code)
	}
	if rr.Body.String() != "{\"following\":true}\n" {
		t.Errorf("probe body = %q", rr.Body.String())
	}

	rr = doReq(t, h, "DELETE", "/6/follow")
	if rr.Code != http.StatusOK {
		t.Errorf("unfollow: status = %d", rr.Code)
	}
	rr = doReq(t, h, "DELETE", "/6/follow")
	if rr.Code != http.StatusConflict {
		t.Errorf("double unfollow: status = %d, want 409", rr.Code)
	}

	rr = doReq(t, h, "POST", "/999/follow")
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown target: status = %d, want 404", rr.Code)
	}
}
