package flow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cccteam/foursquare/identity"
	"github.com/cccteam/foursquare/internal/cookie"
	"github.com/cccteam/foursquare/mock/mock_profile"
	"github.com/cccteam/foursquare/mock/mock_provider"
	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func newCookieClient(t *testing.T) *cookie.Client {
	t.Helper()

	c, err := cookie.NewClient("")
	if err != nil {
		t.Fatalf("cookie.NewClient() error = %v", err)
	}

	return c
}

// startFlow runs the request phase and returns the state and flow cookie it produced.
func startFlow(t *testing.T, f *Flow, p *mock_provider.MockProvider, returnURL string) (string, *http.Cookie) {
	t.Helper()

	var state string
	p.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(s string, _ ...oauth2.AuthCodeOption) string {
		state = s

		return "https://foursquare.com/oauth2/authenticate?state=" + s
	}).Times(1)

	rr := httptest.NewRecorder()
	if _, err := f.AuthCodeURL(context.Background(), rr, returnURL); err != nil {
		t.Fatalf("Flow.AuthCodeURL() error = %v", err)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Flow.AuthCodeURL() set %d cookies, want 1", len(cookies))
	}

	return state, cookies[0]
}

func TestFlow_AuthCodeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		returnURL     string
		wantReturnURL string
	}{
		{
			name:          "local return url is kept",
			returnURL:     "/dashboard?tab=1",
			wantReturnURL: "/dashboard?tab=1",
		},
		{
			name:          "absolute return url is replaced",
			returnURL:     "https://evil.example.com",
			wantReturnURL: "/",
		},
		{
			name:          "protocol relative return url is replaced",
			returnURL:     "//evil.example.com",
			wantReturnURL: "/",
		},
		{
			name:          "tab smuggled return url is replaced",
			returnURL:     "/\t/evil.example.com",
			wantReturnURL: "/",
		},
		{
			name:          "empty return url",
			wantReturnURL: "/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			p := mock_provider.NewMockProvider(ctrl)
			cc := newCookieClient(t)
			f := New(cc, p, mock_profile.NewMockFetcher(ctrl))

			state, c := startFlow(t, f, p, tt.returnURL)
			if state == "" {
				t.Fatalf("state is empty")
			}

			r := httptest.NewRequest(http.MethodGet, "/callback", http.NoBody)
			r.AddCookie(c)
			vals, ok := cc.ReadFlowCookie(r)
			if !ok {
				t.Fatalf("ReadFlowCookie() found = false")
			}
			if got := vals.Get(cookie.State); got != state {
				t.Errorf("cookie state = %v, want %v", got, state)
			}
			if got := vals.Get(cookie.ReturnURL); got != tt.wantReturnURL {
				t.Errorf("cookie returnURL = %v, want %v", got, tt.wantReturnURL)
			}
		})
	}
}

func TestFlow_AuthCodeURL_uniqueState(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	p := mock_provider.NewMockProvider(ctrl)
	f := New(newCookieClient(t), p, mock_profile.NewMockFetcher(ctrl))

	first, _ := startFlow(t, f, p, "/")
	second, _ := startFlow(t, f, p, "/")
	if first == second {
		t.Errorf("state reused across flows: %v", first)
	}
}

func TestFlow_Verify(t *testing.T) {
	t.Parallel()

	token := &oauth2.Token{AccessToken: "testToken"}
	user := identity.RawProfile{
		"id":        "123",
		"firstName": "Jane",
		"lastName":  "Doe",
		"contact":   map[string]any{"email": "jane@example.com"},
	}

	tests := []struct {
		name           string
		noCookie       bool
		query          func(state string) url.Values
		prepare        func(*mock_provider.MockProvider, *mock_profile.MockFetcher)
		wantStatusCode int
		wantUID        string
	}{
		{
			name:           "missing flow cookie",
			noCookie:       true,
			query:          func(state string) url.Values { return url.Values{"state": {state}, "code": {"testCode"}} },
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "state mismatch",
			query:          func(string) url.Values { return url.Values{"state": {"forged"}, "code": {"testCode"}} },
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "state missing",
			query:          func(string) url.Values { return url.Values{"code": {"testCode"}} },
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "user denied access",
			query:          func(state string) url.Values { return url.Values{"state": {state}, "error": {"access_denied"}} },
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing code",
			query:          func(state string) url.Values { return url.Values{"state": {state}} },
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "token exchange fails",
			query: func(state string) url.Values { return url.Values{"state": {state}, "code": {"testCode"}} },
			prepare: func(p *mock_provider.MockProvider, _ *mock_profile.MockFetcher) {
				p.EXPECT().Exchange(gomock.Any(), "testCode").Return(nil, errors.New("invalid_grant")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:  "profile fetch fails",
			query: func(state string) url.Values { return url.Values{"state": {state}, "code": {"testCode"}} },
			prepare: func(p *mock_provider.MockProvider, pf *mock_profile.MockFetcher) {
				p.EXPECT().Exchange(gomock.Any(), "testCode").Return(token, nil).Times(1)
				p.EXPECT().Client(gomock.Any(), token).Return(http.DefaultClient).Times(1)
				pf.EXPECT().Fetch(gomock.Any(), http.DefaultClient).Return(nil, errors.New("users/self returned 401")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:  "profile without id",
			query: func(state string) url.Values { return url.Values{"state": {state}, "code": {"testCode"}} },
			prepare: func(p *mock_provider.MockProvider, pf *mock_profile.MockFetcher) {
				p.EXPECT().Exchange(gomock.Any(), "testCode").Return(token, nil).Times(1)
				p.EXPECT().Client(gomock.Any(), token).Return(http.DefaultClient).Times(1)
				pf.EXPECT().Fetch(gomock.Any(), http.DefaultClient).Return(identity.RawProfile{"firstName": "Jane"}, nil).Times(1)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:  "success",
			query: func(state string) url.Values { return url.Values{"state": {state}, "code": {"testCode"}} },
			prepare: func(p *mock_provider.MockProvider, pf *mock_profile.MockFetcher) {
				p.EXPECT().Exchange(gomock.Any(), "testCode").Return(token, nil).Times(1)
				p.EXPECT().Client(gomock.Any(), token).Return(http.DefaultClient).Times(1)
				pf.EXPECT().Fetch(gomock.Any(), http.DefaultClient).Return(user, nil).Times(1)
			},
			wantUID: "123",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			p := mock_provider.NewMockProvider(ctrl)
			pf := mock_profile.NewMockFetcher(ctrl)
			f := New(newCookieClient(t), p, pf)

			state, c := startFlow(t, f, p, "/dashboard")
			if tt.prepare != nil {
				tt.prepare(p, pf)
			}

			r := httptest.NewRequest(http.MethodGet, "/callback?"+tt.query(state).Encode(), http.NoBody)
			if !tt.noCookie {
				r.AddCookie(c)
			}
			rr := httptest.NewRecorder()

			hash, returnURL, err := f.Verify(context.Background(), rr, r)
			if tt.wantStatusCode != 0 {
				if err == nil {
					t.Fatalf("Flow.Verify() error = nil, want status %d", tt.wantStatusCode)
				}
				er := httptest.NewRecorder()
				_ = httpio.NewEncoder(er).ClientMessage(context.Background(), err)
				if got := er.Code; got != tt.wantStatusCode {
					t.Errorf("Flow.Verify() status = %v, want %v", got, tt.wantStatusCode)
				}

				return
			}
			if err != nil {
				t.Fatalf("Flow.Verify() error = %v", err)
			}

			if returnURL != "/dashboard" {
				t.Errorf("Flow.Verify() returnURL = %v, want %v", returnURL, "/dashboard")
			}
			email, name := "jane@example.com", "Jane Doe"
			first, last := "Jane", "Doe"
			want := &identity.AuthHash{
				Provider: identity.ProviderName,
				UID:      tt.wantUID,
				UserInfo: identity.UserInfo{
					FirstName: &first,
					LastName:  &last,
					Email:     &email,
					Name:      name,
					URLs:      map[string]string{},
				},
				Credentials: identity.Credentials{Token: "testToken"},
				Extra:       identity.Extra{UserHash: user},
			}
			if diff := cmp.Diff(want, hash); diff != "" {
				t.Errorf("Flow.Verify() mismatch (-want +got):\n%s", diff)
			}

			// the flow cookie is single use
			cookies := rr.Result().Cookies()
			if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
				t.Errorf("Flow.Verify() did not expire the flow cookie: %v", cookies)
			}
		})
	}
}

func TestFlow_LoginURL(t *testing.T) {
	t.Parallel()

	f := New(nil, nil, nil)
	if got := f.LoginURL(); got != "/login" {
		t.Errorf("Flow.LoginURL() = %v, want %v", got, "/login")
	}

	f.SetLoginURL("/signin")
	if got := f.LoginURL(); got != "/signin" {
		t.Errorf("Flow.LoginURL() = %v, want %v", got, "/signin")
	}
}

func Test_localURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "path", in: "/a/b?c=d", want: "/a/b?c=d"},
		{name: "root", in: "/", want: "/"},
		{name: "empty", in: "", want: "/"},
		{name: "absolute", in: "https://example.com/a", want: "/"},
		{name: "protocol relative", in: "//example.com", want: "/"},
		{name: "backslash", in: "/\\example.com", want: "/"},
		{name: "relative", in: "dashboard", want: "/"},
		{name: "padded", in: "  /a  ", want: "/a"},
		{name: "tab", in: "/\t/evil.example.com", want: "/"},
		{name: "line feed", in: "/\n/evil.example.com", want: "/"},
		{name: "carriage return", in: "/\r/evil.example.com", want: "/"},
		{name: "null", in: "/a\x00b", want: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := localURL(tt.in); got != tt.want {
				t.Errorf("localURL() = %v, want %v", got, tt.want)
			}
		})
	}
}
