package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"bitwise74/review-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate(t *testing.T) {
	a := newTestAPI(t)

	cookie := registerAndLogin(t, a, "reviewer")
	movie := seedMovie(t, a, "Heat")

	w := doJSON(t, a, http.MethodPost, "/createreview", gin.H{
		"id":         movie.ID,
		"reviewText": "Diner scene alone is worth it",
		"rating":     5,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	review := body["review"].(map[string]any)
	assert.Equal(t, float64(movie.ID), review["movie_id"])
	assert.Equal(t, "Diner scene alone is worth it", review["reviewText"])
	assert.Equal(t, float64(5), review["rating"])
	assert.NotEmpty(t, review["user_id"])
}

func TestReviewCreateRequiresAuth(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/createreview", gin.H{
		"id":         1,
		"reviewText": "nope",
		"rating":     1,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodPost, "/createreview", gin.H{
		"id":         1,
		"reviewText": "nope",
		"rating":     1,
	}, &http.Cookie{Name: "accessToken", Value: "garbage"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMovieFetchWithReviews(t *testing.T) {
	a := newTestAPI(t)

	cookie := registerAndLogin(t, a, "watcher")
	movie := seedMovie(t, a, "Alien")

	w := doJSON(t, a, http.MethodPost, "/createreview", gin.H{
		"id":         movie.ID,
		"reviewText": "Still terrifying",
		"rating":     5,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodPost, "/getmoviewithreviews", gin.H{"id": movie.ID}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	got := body["movie"].(map[string]any)
	assert.Equal(t, "Alien", got["title"])

	reviews := got["reviews"].([]any)
	require.Len(t, reviews, 1)

	review := reviews[0].(map[string]any)
	assert.Equal(t, "Still terrifying", review["reviewText"])

	// The author rides along with each review
	author := review["author"].(map[string]any)
	assert.Equal(t, "watcher", author["username"])
	assert.NotContains(t, author, "password")
}

func TestMovieFetchNotFound(t *testing.T) {
	a := newTestAPI(t)

	cookie := registerAndLogin(t, a, "nobody")

	w := doJSON(t, a, http.MethodPost, "/getmoviewithreviews", gin.H{"id": 99999}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewUpdateIsIdempotent(t *testing.T) {
	a := newTestAPI(t)

	cookie := registerAndLogin(t, a, "editor")
	movie := seedMovie(t, a, "The Thing")

	w := doJSON(t, a, http.MethodPost, "/createreview", gin.H{
		"id":         movie.ID,
		"reviewText": "first impression",
		"rating":     3,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)["review"].(map[string]any)
	reviewID := uint(created["id"].(float64))

	update := gin.H{
		"reviewId":   reviewID,
		"reviewText": "aged well",
		"rating":     5,
	}

	for range 2 {
		w = doJSON(t, a, http.MethodPost, "/updatereview", update, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		review := decodeBody(t, w)["review"].(map[string]any)
		assert.Equal(t, "aged well", review["reviewText"])
		assert.Equal(t, float64(5), review["rating"])
	}

	var stored model.Review
	require.NoError(t, a.DB.Where("id = ?", reviewID).First(&stored).Error)
	assert.Equal(t, "aged well", stored.ReviewText)
	assert.Equal(t, 5, stored.Rating)
}

func TestReviewDeleteRemovesFromMovie(t *testing.T) {
	a := newTestAPI(t)

	cookie := registerAndLogin(t, a, "deleter")
	movie := seedMovie(t, a, "Spirited Away")

	w := doJSON(t, a, http.MethodPost, "/createreview", gin.H{
		"id":         movie.ID,
		"reviewText": "to be deleted",
		"rating":     1,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)["review"].(map[string]any)
	reviewID := uint(created["id"].(float64))

	w = doJSON(t, a, http.MethodPost, "/deletereview", gin.H{"reviewId": reviewID}, cookie)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, a, http.MethodPost, "/getmoviewithreviews", gin.H{"id": movie.ID}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody(t, w)["movie"].(map[string]any)
	reviews, _ := got["reviews"].([]any)
	assert.Empty(t, reviews)
}

func TestMovieList(t *testing.T) {
	a := newTestAPI(t)

	seedMovie(t, a, "Seven Samurai")
	seedMovie(t, a, "12 Angry Men")

	w := doJSON(t, a, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movies))
	require.Len(t, movies, 2)

	// Ordered by title
	assert.Equal(t, "12 Angry Men", movies[0]["title"])
	assert.Equal(t, "Seven Samurai", movies[1]["title"])
}
