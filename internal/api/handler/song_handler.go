package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/core/ports"
)

// SongHandler handles HTTP requests for catalog operations.
type SongHandler struct {
	service   ports.SongService
	recommend ports.RecommendationService
}

func NewSongHandler(service ports.SongService, recommend ports.RecommendationService) *SongHandler {
	return &SongHandler{service: service, recommend: recommend}
}

type songRequest struct {
	Title       string `json:"title" validate:"required"`
	Album       string `json:"album" validate:"required"`
	Artist      string `json:"artist"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
}

func (r songRequest) toDomain() domain.Song {
	return domain.Song{
		Title:       r.Title,
		Album:       r.Album,
		Artist:      r.Artist,
		Genre:       r.Genre,
		ReleaseYear: r.ReleaseYear,
	}
}

// Create stores a new catalog entry. Administrator only.
//
// @Summary      Create a song
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      songRequest  true  "Song to create"
// @Success      201   {object}  domain.Song
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/Song/CreateSong [post]
func (h *SongHandler) Create(c echo.Context) error {
	var req songRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	song, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyField):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and album are required"})
		case errors.Is(err, domain.ErrSongExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": "song already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, song)
}

// List returns every catalog entry.
//
// @Summary      List all songs
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Song
// @Router       /api/Song/GetAllSongs [get]
func (h *SongHandler) List(c echo.Context) error {
	songs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, songs)
}

// ByTitle returns songs matching a title exactly.
//
// @Summary      Query songs by title
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        title  path     string  true  "Title"
// @Success      200    {array}  domain.Song
// @Router       /api/Song/GetSongsByTitle/{title} [get]
func (h *SongHandler) ByTitle(c echo.Context) error {
	return h.queryByField(c, domain.FieldTitle, strings.TrimSpace(c.Param("title")))
}

// ByAlbum returns songs matching an album exactly.
//
// @Summary      Query songs by album
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        album  path     string  true  "Album"
// @Success      200    {array}  domain.Song
// @Router       /api/Song/GetSongsByAlbum/{album} [get]
func (h *SongHandler) ByAlbum(c echo.Context) error {
	return h.queryByField(c, domain.FieldAlbum, strings.TrimSpace(c.Param("album")))
}

// ByArtist returns songs matching an artist exactly.
//
// @Summary      Query songs by artist
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        artist  path     string  true  "Artist"
// @Success      200     {array}  domain.Song
// @Router       /api/Song/GetSongsByArtist/{artist} [get]
func (h *SongHandler) ByArtist(c echo.Context) error {
	return h.queryByField(c, domain.FieldArtist, strings.TrimSpace(c.Param("artist")))
}

// ByGenre returns songs matching a genre exactly.
//
// @Summary      Query songs by genre
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        genre  path     string  true  "Genre"
// @Success      200    {array}  domain.Song
// @Router       /api/Song/GetSongsByGenre/{genre} [get]
func (h *SongHandler) ByGenre(c echo.Context) error {
	return h.queryByField(c, domain.FieldGenre, strings.TrimSpace(c.Param("genre")))
}

// ByReleaseYear returns songs matching a release year exactly.
//
// @Summary      Query songs by release year
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        releaseYear  path     int  true  "Release year"
// @Success      200          {array}  domain.Song
// @Failure      400          {object} map[string]string
// @Router       /api/Song/GetSongsByReleaseYear/{releaseYear} [get]
func (h *SongHandler) ByReleaseYear(c echo.Context) error {
	year, err := strconv.Atoi(strings.TrimSpace(c.Param("releaseYear")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "release year must be an integer"})
	}
	return h.queryByField(c, domain.FieldReleaseYear, year)
}

func (h *SongHandler) queryByField(c echo.Context, field domain.SongField, value any) error {
	songs, err := h.service.QueryByField(c.Request().Context(), field, value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, songs)
}

// Update replaces an existing catalog entry. Administrator only.
//
// @Summary      Update a song
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      songRequest  true  "Song to update"
// @Success      201   {object}  domain.Song
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/Song/UpdateSong [put]
func (h *SongHandler) Update(c echo.Context) error {
	var req songRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	song, err := h.service.Update(c.Request().Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyField):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and album are required"})
		case errors.Is(err, domain.ErrSongNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "song not found"})
		case errors.Is(err, domain.ErrStoreConflict):
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "store conflict, retry later"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, song)
}

// Delete removes a catalog entry by composite key. Administrator only.
//
// @Summary      Delete a song
// @Tags         songs
// @Security     BearerAuth
// @Param        title  path  string  true  "Title"
// @Param        album  path  string  true  "Album"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/Song/DeleteSong/{title}/{album} [delete]
func (h *SongHandler) Delete(c echo.Context) error {
	title := strings.TrimSpace(c.Param("title"))
	album := strings.TrimSpace(c.Param("album"))

	if err := h.service.Delete(c.Request().Context(), title, album); err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "song not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Recommendation returns the rating prediction text for a (user, song) pair.
// Out-of-range IDs answer 200 with explanatory text rather than an error.
//
// @Summary      Get a song rating prediction
// @Tags         songs
// @Produce      plain
// @Security     BearerAuth
// @Param        userId  query     int  true  "User ID (1-3)"
// @Param        songId  query     int  true  "Song ID (1-5)"
// @Success      200     {string}  string
// @Router       /api/Song/GetSongRecommendation [get]
func (h *SongHandler) Recommendation(c echo.Context) error {
	// Unparseable or missing IDs fall through as 0, which the service
	// answers with its out-of-range text.
	userID, _ := strconv.Atoi(c.QueryParam("userId"))
	songID, _ := strconv.Atoi(c.QueryParam("songId"))

	text, err := h.recommend.Recommend(c.Request().Context(), userID, songID)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, text)
}
