package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Room is a sample catalog entry served by the demo endpoints. The
// catalog is fixed in memory and independent of the uploaded data.
type Room struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities"`
}

var sampleRooms = []Room{
	{
		ID:          1,
		Type:        "Standard",
		Price:       100.00,
		Capacity:    2,
		Description: "Comfortable room with a queen-size bed",
		Amenities:   []string{"Wi-Fi", "TV", "Air Conditioning"},
	},
	{
		ID:          2,
		Type:        "Deluxe",
		Price:       150.00,
		Capacity:    2,
		Description: "Spacious room with a king-size bed and city view",
		Amenities:   []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "City View"},
	},
	{
		ID:          3,
		Type:        "Suite",
		Price:       250.00,
		Capacity:    4,
		Description: "Luxury suite with separate living area",
		Amenities:   []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Bar", "Living Room", "Kitchen"},
	},
}

func (h *Handler) GetRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, sampleRooms)
}

func (h *Handler) GetRoom(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid room id")
	}
	for _, room := range sampleRooms {
		if room.ID == id {
			return c.JSON(http.StatusOK, room)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Room not found"})
}
