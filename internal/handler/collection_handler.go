package handler

import (
	"net/http"
	"time"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/collection"
	"chaugames/backend/internal/database"
	"chaugames/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// AddGameInput is the request body for logging a game.
type AddGameInput struct {
	GameID      int64   `json:"gameId" binding:"required" example:"42"`
	Title       string  `json:"title" binding:"required" example:"Chrono Trigger"`
	Platform    string  `json:"platform" example:"SNES"`
	ReleaseDate *string `json:"releaseDate" example:"1995-03-11"`
	ImageURL    *string `json:"imageUrl"`
	PlayedAt    *string `json:"playedAt" example:"2024-06-01"`
	Rating      *int    `json:"rating" example:"5"`
}

// FeedUser identifies the owner of a feed entry.
type FeedUser struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// GameEntryResponse is one logged game as rendered in collection and feed
// views. Rating is omitted entirely when unrated so the client never shows
// a zero-star rating.
type GameEntryResponse struct {
	ID          uint      `json:"id"`
	MobyGamesID int64     `json:"mobyGamesId"`
	Title       string    `json:"title"`
	Platform    string    `json:"platform"`
	ReleaseDate *string   `json:"releaseDate"`
	ImageURL    *string   `json:"imageUrl"`
	AddedAt     time.Time `json:"addedAt"`
	PlayedAt    *string   `json:"playedAt"`
	Rating      *int      `json:"rating,omitempty"`
	Mine        bool      `json:"mine,omitempty"`
	User        *FeedUser `json:"user,omitempty"`
}

// CollectionResponse is the personal collection view.
type CollectionResponse struct {
	Games []GameEntryResponse `json:"games"`
	Total int                 `json:"total"`
}

// CommunityResponse is the community feed plus its aggregates.
type CommunityResponse struct {
	Games       []GameEntryResponse `json:"games"`
	Total       int                 `json:"total"`
	UniqueUsers int                 `json:"uniqueUsers"`
	Stats       collection.Stats    `json:"stats"`
}

func newGameEntryResponse(e collection.Entry, viewerEmail string, withOwner bool) GameEntryResponse {
	resp := GameEntryResponse{
		ID:          e.GameID,
		MobyGamesID: e.MobyID,
		Title:       e.Title,
		Platform:    e.Platform,
		ReleaseDate: e.ReleaseDate,
		ImageURL:    e.ImageURL,
		AddedAt:     e.AddedAt,
		Rating:      e.Rating,
	}
	if e.PlayedAt != nil {
		played := e.PlayedAt.Format(time.RFC3339)
		resp.PlayedAt = &played
	}
	if withOwner {
		resp.User = &FeedUser{DisplayName: e.OwnerName, Email: e.OwnerEmail}
		resp.Mine = viewerEmail != "" && viewerEmail == e.OwnerEmail
	}
	return resp
}

func newGameEntryResponses(entries []collection.Entry, viewerEmail string, withOwner bool) []GameEntryResponse {
	out := make([]GameEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = newGameEntryResponse(e, viewerEmail, withOwner)
	}
	return out
}

// endregion

// parsePlayedAt accepts a date ("2006-01-02") or an RFC 3339 timestamp.
func parsePlayedAt(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.Validation("playedAt", "Invalid played date")
}

// region --- Handlers ---

// AddGame godoc
// @Summary      Add a game to the collection
// @Description  Logs a game for the authenticated user. Each (user, game) pair can be logged at most once; a repeat attempt is a conflict and writes nothing.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddGameInput true "Game to log"
// @Success      201  {object}  map[string]interface{} "{"message": "Game added to collection", "game": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Game already in collection"
// @Router       /games [post]
func AddGame(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		respondError(c, apperr.Authentication("Unauthorized"))
		return
	}

	var input AddGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("game", "Missing required game data"))
		return
	}

	playedAt, err := parsePlayedAt(input.PlayedAt)
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := collection.AddGame(database.DB, p, collection.AddGameInput{
		MobyID:      input.GameID,
		Title:       input.Title,
		Platform:    input.Platform,
		ReleaseDate: input.ReleaseDate,
		ImageURL:    input.ImageURL,
		PlayedAt:    playedAt,
		Rating:      input.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Game added to collection",
		"game":    newGameEntryResponse(collection.NewEntry(*entry), "", false),
	})
}

// GetCollection godoc
// @Summary      Get the personal collection
// @Description  Returns the authenticated user's logged games. Default order is most recently logged first; sort=title and sort=played re-order the view.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        sort query string false "Sort mode" Enums(added, title, played) default(added)
// @Success      200  {object}  CollectionResponse
// @Failure      400  {object}  ErrorResponse "Unknown sort mode"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /games/collection [get]
func GetCollection(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		respondError(c, apperr.Authentication("Unauthorized"))
		return
	}

	sortMode := c.DefaultQuery("sort", "added")
	if sortMode != "added" && sortMode != "title" && sortMode != "played" {
		respondError(c, apperr.Validation("sort", "Unknown sort mode"))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", p.Email).First(&user).Error; err != nil {
		respondError(c, apperr.NotFound("User"))
		return
	}

	var rows []models.UserGame
	err := database.DB.Preload("Game").
		Where("user_id = ?", user.ID).
		Order("added_at DESC").
		Find(&rows).Error
	if err != nil {
		respondError(c, apperr.Internal("Failed to fetch collection", err))
		return
	}

	entries := collection.NewEntries(rows)
	switch sortMode {
	case "title":
		entries = collection.SortGamesByTitle(entries)
	case "played":
		entries = collection.SortGamesByDatePlayed(entries)
	}

	c.JSON(http.StatusOK, CollectionResponse{
		Games: newGameEntryResponses(entries, "", false),
		Total: len(entries),
	})
}

// GetCommunityFeed godoc
// @Summary      Get the community feed with stats
// @Description  Returns every user's logged games, most recently logged first, along with the community aggregates.
// @Tags         games
// @Produce      json
// @Success      200  {object}  CommunityResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/community [get]
func GetCommunityFeed(c *gin.Context) {
	entries, err := loadCommunityEntries()
	if err != nil {
		respondError(c, err)
		return
	}

	stats := collection.ComputeStats(entries)
	viewer, _ := principalFromContext(c)

	c.JSON(http.StatusOK, CommunityResponse{
		Games:       newGameEntryResponses(entries, viewer.Email, true),
		Total:       stats.TotalGames,
		UniqueUsers: stats.UniqueUsers,
		Stats:       stats,
	})
}

// GetCommunityDigest godoc
// @Summary      Get the recent community digest
// @Description  Returns the ten most recently logged games across all users plus the community aggregates. The aggregates cover the whole feed, not just the digest window.
// @Tags         games
// @Produce      json
// @Success      200  {object}  CommunityResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/community/digest [get]
func GetCommunityDigest(c *gin.Context) {
	entries, err := loadCommunityEntries()
	if err != nil {
		respondError(c, err)
		return
	}

	stats := collection.ComputeStats(entries)
	viewer, _ := principalFromContext(c)
	digest := collection.Digest(entries)

	c.JSON(http.StatusOK, CommunityResponse{
		Games:       newGameEntryResponses(digest, viewer.Email, true),
		Total:       stats.TotalGames,
		UniqueUsers: stats.UniqueUsers,
		Stats:       stats,
	})
}

func loadCommunityEntries() ([]collection.Entry, error) {
	var rows []models.UserGame
	err := database.DB.Preload("Game").Preload("User").
		Order("added_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Internal("Oh no! The feed failed to load. Try again later.", err)
	}
	return collection.NewEntries(rows), nil
}

// endregion
