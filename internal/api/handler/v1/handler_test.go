package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/vietanh2810/familymap-api/internal/api/handler/v1"
	"github.com/vietanh2810/familymap-api/internal/api/middleware"
	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/service"
)

type stubAuthService struct {
	register func(user domain.User, person domain.Person) (domain.Login, error)
	login    func(username, password string) (domain.Login, error)
}

func (s *stubAuthService) Register(_ context.Context, user domain.User, person domain.Person) (domain.Login, error) {
	return s.register(user, person)
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (domain.Login, error) {
	return s.login(username, password)
}

type stubFamilyService struct {
	fill  func(username string, generations int) (string, error)
	load  func(users []domain.User, persons []domain.Person, events []domain.Event) (string, error)
	clear func() (string, error)
}

func (s *stubFamilyService) Fill(_ context.Context, username string, generations int) (string, error) {
	return s.fill(username, generations)
}

func (s *stubFamilyService) Load(_ context.Context, users []domain.User, persons []domain.Person, events []domain.Event) (string, error) {
	return s.load(users, persons, events)
}

func (s *stubFamilyService) Clear(_ context.Context) (string, error) {
	return s.clear()
}

type stubPersonService struct {
	get  func(token, personID string) (domain.Person, error)
	list func(token string) ([]domain.Person, error)
}

func (s *stubPersonService) GetPerson(_ context.Context, token, personID string) (domain.Person, error) {
	return s.get(token, personID)
}

func (s *stubPersonService) ListPeople(_ context.Context, token string) ([]domain.Person, error) {
	return s.list(token)
}

type stubEventService struct {
	get  func(token, eventID string) (domain.Event, error)
	list func(token string) ([]domain.Event, error)
}

func (s *stubEventService) GetEvent(_ context.Context, token, eventID string) (domain.Event, error) {
	return s.get(token, eventID)
}

func (s *stubEventService) ListEvents(_ context.Context, token string) ([]domain.Event, error) {
	return s.list(token)
}

func newTestRouter(auth v1.AuthService, family v1.FamilyService, person v1.PersonService, event v1.EventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if auth != nil {
		h := v1.NewAuthHandler(auth)
		router.POST("/user/register", h.HandleRegister)
		router.POST("/user/login", h.HandleLogin)
	}
	if family != nil {
		h := v1.NewFamilyHandler(family)
		router.POST("/fill/:username", h.HandleFill)
		router.POST("/fill/:username/:generations", h.HandleFill)
		router.POST("/load", h.HandleLoad)
		router.POST("/clear", h.HandleClear)
	}
	if person != nil {
		h := v1.NewPersonHandler(person)
		router.GET("/person", middleware.BearerToken(), h.HandleListPeople)
		router.GET("/person/:personID", middleware.BearerToken(), h.HandleGetPerson)
	}
	if event != nil {
		h := v1.NewEventHandler(event)
		router.GET("/event", middleware.BearerToken(), h.HandleListEvents)
		router.GET("/event/:eventID", middleware.BearerToken(), h.HandleGetEvent)
	}
	router.GET("/", v1.HandleHealthcheck)

	return router
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHandleRegister(t *testing.T) {
	validBody := `{
		"userName": "sheila",
		"password": "parker1234",
		"email": "sheila@example.com",
		"firstName": "Sheila",
		"lastName": "Parker",
		"gender": "f"
	}`

	t.Run("success", func(t *testing.T) {
		auth := &stubAuthService{
			register: func(user domain.User, person domain.Person) (domain.Login, error) {
				assert.Equal(t, "sheila", user.Username)
				assert.Equal(t, "Parker", person.LastName)

				return domain.Login{
					AuthToken: "tok-1",
					Username:  user.Username,
					PersonID:  "p1",
				}, nil
			},
		}
		router := newTestRouter(auth, nil, nil, nil)

		resp := doRequest(router, http.MethodPost, "/user/register", validBody, "")

		require.Equal(t, http.StatusOK, resp.Code)

		var login domain.Login
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
		assert.Equal(t, "tok-1", login.AuthToken)
		assert.Equal(t, "p1", login.PersonID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		auth := &stubAuthService{
			register: func(domain.User, domain.Person) (domain.Login, error) {
				return domain.Login{}, service.ErrDuplicateUsername
			},
		}
		router := newTestRouter(auth, nil, nil, nil)

		resp := doRequest(router, http.MethodPost, "/user/register", validBody, "")

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "already taken")
	})

	t.Run("invalid payload", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "malformed json", body: `{"userName":`},
			{name: "bad email", body: `{"userName":"s","password":"parker1234","email":"nope","firstName":"S","lastName":"P","gender":"f"}`},
			{name: "weak password", body: `{"userName":"s","password":"short","email":"s@example.com","firstName":"S","lastName":"P","gender":"f"}`},
			{name: "bad gender", body: `{"userName":"s","password":"parker1234","email":"s@example.com","firstName":"S","lastName":"P","gender":"x"}`},
		}

		router := newTestRouter(&stubAuthService{
			register: func(domain.User, domain.Person) (domain.Login, error) {
				t.Fatal("service must not be called")

				return domain.Login{}, nil
			},
		}, nil, nil, nil)

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := doRequest(router, http.MethodPost, "/user/register", tt.body, "")
				assert.Equal(t, http.StatusBadRequest, resp.Code)
			})
		}
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := &stubAuthService{
			login: func(username, password string) (domain.Login, error) {
				assert.Equal(t, "sheila", username)
				assert.Equal(t, "parker1234", password)

				return domain.Login{AuthToken: "tok-1", Username: username, PersonID: "p1"}, nil
			},
		}
		router := newTestRouter(auth, nil, nil, nil)

		resp := doRequest(router, http.MethodPost, "/user/login", `{"userName":"sheila","password":"parker1234"}`, "")

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		auth := &stubAuthService{
			login: func(string, string) (domain.Login, error) {
				return domain.Login{}, service.ErrInvalidCredentials
			},
		}
		router := newTestRouter(auth, nil, nil, nil)

		resp := doRequest(router, http.MethodPost, "/user/login", `{"userName":"sheila","password":"nope12345"}`, "")

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestHandleFill(t *testing.T) {
	t.Run("default generations", func(t *testing.T) {
		family := &stubFamilyService{
			fill: func(username string, generations int) (string, error) {
				assert.Equal(t, "sheila", username)
				assert.Equal(t, service.DefaultGenerations, generations)

				return "Successfully added 31 persons and 152 events to the database", nil
			},
		}
		router := newTestRouter(nil, family, nil, nil)

		resp := doRequest(router, http.MethodPost, "/fill/sheila", "", "")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "31 persons")
	})

	t.Run("explicit generations", func(t *testing.T) {
		family := &stubFamilyService{
			fill: func(username string, generations int) (string, error) {
				assert.Equal(t, 2, generations)

				return "Successfully added 7 persons and 33 events to the database", nil
			},
		}
		router := newTestRouter(nil, family, nil, nil)

		resp := doRequest(router, http.MethodPost, "/fill/sheila/2", "", "")

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("bad generations param", func(t *testing.T) {
		router := newTestRouter(nil, &stubFamilyService{
			fill: func(string, int) (string, error) {
				t.Fatal("service must not be called")

				return "", nil
			},
		}, nil, nil)

		for _, param := range []string{"abc", "-1", "2.5"} {
			resp := doRequest(router, http.MethodPost, "/fill/sheila/"+param, "", "")
			assert.Equal(t, http.StatusBadRequest, resp.Code, param)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		family := &stubFamilyService{
			fill: func(string, int) (string, error) {
				return "", service.ErrUserNotFound
			},
		}
		router := newTestRouter(nil, family, nil, nil)

		resp := doRequest(router, http.MethodPost, "/fill/nobody", "", "")

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		family := &stubFamilyService{
			load: func(users []domain.User, persons []domain.Person, events []domain.Event) (string, error) {
				assert.Len(t, users, 1)
				assert.Len(t, persons, 1)
				assert.Empty(t, events)

				return "Successfully added 1 users, 1 persons, and 0 events to the database.", nil
			},
		}
		router := newTestRouter(nil, family, nil, nil)

		body := `{
			"users": [{"userName":"sheila","password":"parker1234","email":"sheila@example.com","personID":"p1"}],
			"persons": [{"personID":"p1","descendant":"sheila","firstName":"Sheila","lastName":"Parker","gender":"f"}],
			"events": []
		}`
		resp := doRequest(router, http.MethodPost, "/load", body, "")

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("missing lists", func(t *testing.T) {
		router := newTestRouter(nil, &stubFamilyService{
			load: func([]domain.User, []domain.Person, []domain.Event) (string, error) {
				t.Fatal("service must not be called")

				return "", nil
			},
		}, nil, nil)

		resp := doRequest(router, http.MethodPost, "/load", `{"users": []}`, "")

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("constraint violation", func(t *testing.T) {
		family := &stubFamilyService{
			load: func([]domain.User, []domain.Person, []domain.Event) (string, error) {
				return "", service.ErrDuplicateKey
			},
		}
		router := newTestRouter(nil, family, nil, nil)

		resp := doRequest(router, http.MethodPost, "/load", `{"users":[],"persons":[],"events":[]}`, "")

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleClear(t *testing.T) {
	family := &stubFamilyService{
		clear: func() (string, error) {
			return "Clear succeeded", nil
		},
	}
	router := newTestRouter(nil, family, nil, nil)

	resp := doRequest(router, http.MethodPost, "/clear", "", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Clear succeeded")
}

func TestHandleGetPerson(t *testing.T) {
	person := &stubPersonService{
		get: func(token, personID string) (domain.Person, error) {
			switch {
			case token != "tok-1":
				return domain.Person{}, service.ErrInvalidToken
			case personID == "theirs":
				return domain.Person{}, service.ErrOwnershipMismatch
			case personID != "p1":
				return domain.Person{}, service.ErrPersonNotFound
			}

			return domain.Person{ID: "p1", Descendant: "sheila", FirstName: "Sheila"}, nil
		},
	}
	router := newTestRouter(nil, nil, person, nil)

	t.Run("success", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/person/p1", "", "tok-1")

		require.Equal(t, http.StatusOK, resp.Code)

		var got domain.Person
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, "Sheila", got.FirstName)
	})

	t.Run("missing token", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/person/p1", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/person/p1", "", "bogus")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("foreign person", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/person/theirs", "", "tok-1")
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("unknown person", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/person/p9", "", "tok-1")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleListPeople(t *testing.T) {
	person := &stubPersonService{
		list: func(token string) ([]domain.Person, error) {
			require.Equal(t, "tok-1", token)

			return []domain.Person{
				{ID: "p1", Descendant: "sheila"},
				{ID: "p2", Descendant: "sheila"},
			}, nil
		},
	}
	router := newTestRouter(nil, nil, person, nil)

	resp := doRequest(router, http.MethodGet, "/person", "", "tok-1")

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []domain.Person `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestHandleGetEvent(t *testing.T) {
	event := &stubEventService{
		get: func(token, eventID string) (domain.Event, error) {
			if eventID != "e1" {
				return domain.Event{}, service.ErrEventNotFound
			}

			return domain.Event{ID: "e1", EventType: domain.EventBirth, Year: "1970"}, nil
		},
	}
	router := newTestRouter(nil, nil, nil, event)

	t.Run("success", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/event/e1", "", "tok-1")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), domain.EventBirth)
	})

	t.Run("unknown event", func(t *testing.T) {
		resp := doRequest(router, http.MethodGet, "/event/e9", "", "tok-1")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleListEvents(t *testing.T) {
	event := &stubEventService{
		list: func(token string) ([]domain.Event, error) {
			return []domain.Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}, nil
		},
	}
	router := newTestRouter(nil, nil, nil, event)

	resp := doRequest(router, http.MethodGet, "/event", "", "tok-1")

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []domain.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data, 3)
}

func TestHandleHealthcheck(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	resp := doRequest(router, http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, ".", resp.Body.String())
}
