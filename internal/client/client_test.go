package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/forms"
)

func TestGetSchools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/schools", r.URL.Path)
		json.NewEncoder(w).Encode([]dto.SchoolResponse{
			{SchoolID: 1, SchoolName: "Truman State University"},
		})
	}))
	defer srv.Close()

	schools, err := New(srv.URL).GetSchools(context.Background())
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "Truman State University", schools[0].SchoolName)
}

func TestSearchCoursesEncodesTerm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "intro to cs", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode([]dto.CourseWithRatings{})
	}))
	defer srv.Close()

	_, err := New(srv.URL).SearchCourses(context.Background(), "intro to cs")
	require.NoError(t, err)
}

func TestCreateCourseSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.CourseWithRatings{CourseID: 7, CourseName: "Linear Algebra"})
	}))
	defer srv.Close()

	course, err := New(srv.URL).CreateCourse(context.Background(), dto.CreateCourseRequest{}, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), course.CourseID)
}

// Submitting a validated draft hits POST /ratings with the normalized
// payload; a 201 means success, a 400 surfaces the backend detail.
func TestSubmitRatingEndToEnd(t *testing.T) {
	var received dto.CreateRatingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ratings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.RatingResponse{RatingID: 1, CourseID: received.CourseID, Rating: received.Rating})
	}))
	defer srv.Close()

	draft := forms.RatingDraft{
		SchoolID:         1,
		CourseID:         42,
		Rating:           4,
		Review:           "Great course",
		TextbookRequired: false,
		Textbook:         "stale value",
	}
	sub, err := draft.Validate()
	require.NoError(t, err)
	require.NotNil(t, sub.Rating)

	rating, err := New(srv.URL).CreateRating(context.Background(), *sub.Rating)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rating.CourseID)

	assert.Equal(t, int64(42), received.CourseID)
	assert.Equal(t, 4, received.Rating)
	assert.Equal(t, "Great course", received.Review)
	assert.Nil(t, received.Textbook)
}

func TestCreateRatingSurfacesDetailVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Detail: "course not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateRating(context.Background(), dto.CreateRatingRequest{CourseID: 999, Rating: 4, Review: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "course not found", apiErr.Detail)
}

func TestUnparseableErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateRating(context.Background(), dto.CreateRatingRequest{CourseID: 1, Rating: 4, Review: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to submit rating", apiErr.Detail)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "courseadmin" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Detail: "incorrect username or password"})
			return
		}
		json.NewEncoder(w).Encode(dto.LoginResponse{AccessToken: "tok", TokenType: "bearer", Role: "admin"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	resp, err := c.Login(context.Background(), "courseadmin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "admin", resp.Role)

	_, err = c.Login(context.Background(), "courseadmin", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "incorrect username or password", apiErr.Detail)
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).GetSchools(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
