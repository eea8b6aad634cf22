package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// FixedTime is the clock value used across fixtures.
var FixedTime = time.Date(2025, time.March, 7, 21, 15, 0, 0, time.UTC)

// Fixture ids
const (
	TestMapID     = "map-harbor"
	TestOtherMap  = "map-forest"
	TestPlayerID  = "player-0001-beef"
	TestOtherID   = "player-0002-cafe"
	TestManagerID = "dm-0001"
)

// CreateTestMap returns an embeddable map.
func CreateTestMap(id string) *entities.Map {
	return &entities.Map{
		ID:           id,
		Name:         "Map " + id,
		ImageURL:     "https://cdn.example.com/maps/" + id + ".png",
		EmbedEnabled: true,
		CreatedBy:    TestManagerID,
		CreatedAt:    FixedTime,
		UpdatedAt:    FixedTime,
	}
}

// CreateTestPlayerToken returns a player token at (x, y).
func CreateTestPlayerToken(id, mapID, playerID string, x, y float64) *entities.Token {
	return &entities.Token{
		ID:        id,
		MapID:     mapID,
		Type:      entities.TokenTypePlayer,
		PlayerID:  playerID,
		X:         x,
		Y:         y,
		CreatedBy: playerID,
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
}

// CreateTestNPCToken returns an npc token at (x, y).
func CreateTestNPCToken(id, mapID, name string, x, y float64) *entities.Token {
	return &entities.Token{
		ID:                id,
		MapID:             mapID,
		Type:              entities.TokenTypeNPC,
		NPCName:           name,
		NPCImageURL:       "https://cdn.example.com/npc/" + id + ".png",
		X:                 x,
		Y:                 y,
		InteractionRadius: 5,
		CreatedBy:         TestManagerID,
		CreatedAt:         FixedTime,
		UpdatedAt:         FixedTime,
	}
}

// CreateTestProfile returns a player with full balances.
func CreateTestProfile(id string, role entities.Role) *entities.Profile {
	return &entities.Profile{
		ID:              id,
		DisplayName:     "Player " + id,
		AvatarURL:       "https://cdn.example.com/avatars/" + id + ".png",
		Role:            role,
		TravelPoints:    10,
		MaxTravelPoints: 10,
		Spirituality:    5,
		MaxSpirituality: 5,
		Sanity:          3,
		MaxSanity:       10,
		UpdatedAt:       FixedTime,
	}
}
