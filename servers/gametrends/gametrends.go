// Package gametrends simulates a game-trends MCP server: storefront promotions plus
// a small per-session game library. The library tools are stateful: the heuristic
// dispatcher mirrors additions into the simulated inventory and folds the inventory
// back into listing responses.
package gametrends

import (
	"context"
	"fmt"
	"strings"

	"mockmcp"
	"mockmcp/mockapi"
)

// FreeGamesArgs are the inputs for get_epic_free_games.
type FreeGamesArgs struct {
	IncludeUpcoming bool `json:"includeUpcoming,omitempty" description:"Include games that will become free soon"`
}

// Game is one storefront entry.
type Game struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	OriginalPrice    float64  `json:"originalPrice"`
	DiscountPrice    float64  `json:"discountPrice"`
	ReleaseDate      string   `json:"releaseDate"`
	IsFreeNow        bool     `json:"isFreeNow"`
	IsUpcomingFree   bool     `json:"isUpcomingFree"`
	PromotionDetails string   `json:"promotionDetails"`
	URL              string   `json:"url"`
	ProductSlug      string   `json:"productSlug"`
	Images           []string `json:"images"`
	Source           string   `json:"source"`
}

// FreeGamesResult is the documented response for get_epic_free_games.
type FreeGamesResult struct {
	Success    bool   `json:"success"`
	Platform   string `json:"platform"`
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Data       []Game `json:"data"`
	SourceType string `json:"source_type"`
	Timestamp  int64  `json:"timestamp"`
}

// AddArgs are the inputs for add_game_to_library.
type AddArgs struct {
	Item string `json:"item" jsonschema:"required" description:"Name of the game to add to the library"`
}

// Validate rejects blank item names.
func (a AddArgs) Validate() error {
	if strings.TrimSpace(a.Item) == "" {
		return fmt.Errorf("item cannot be empty or whitespace")
	}
	return nil
}

// AddResult acknowledges a library addition.
type AddResult struct {
	Success bool   `json:"success"`
	Item    string `json:"item"`
	Message string `json:"message"`
}

// InventoryArgs are the inputs for get_library_inventory (none).
type InventoryArgs struct{}

// InventoryResult is the base response for get_library_inventory; the dispatcher
// merges the live "inventory" and "content" fields over it.
type InventoryResult struct {
	Success   bool     `json:"success"`
	Inventory []string `json:"inventory"`
	Content   string   `json:"content"`
}

// fetchFreeGames simulates the Epic free-games endpoint.
func fetchFreeGames(src *mockapi.Source) mockapi.Flat {
	return mockapi.Flat{
		"success":                 true,
		"platform":                "Epic Games",
		"type":                    "Free Games",
		"count":                   2,
		"data_0_id":               "fortnite",
		"data_0_name":             "Fortnite",
		"data_0_description":      "An online multiplayer battle royale game developed by Epic Games.",
		"data_0_originalPrice":    39.99,
		"data_0_discountPrice":    0.0,
		"data_0_releaseDate":      "2017-07-25T00:00:00Z",
		"data_0_isFreeNow":        true,
		"data_0_isUpcomingFree":   false,
		"data_0_promotionDetails": "Free to play indefinitely",
		"data_0_url":              "https://www.epicgames.com/store/en-US/p/fortnite",
		"data_0_productSlug":      "fortnite",
		"data_0_images":           "https://cdn.epicgames.com/fortnite/offer/keyart.jpg,https://cdn.epicgames.com/fortnite/offer/drop.jpg",
		"data_0_source":           "epic_games_store",
		"data_1_id":               "rocket-league",
		"data_1_name":             "Rocket League",
		"data_1_description":      "A vehicular soccer video game developed by Psyonix.",
		"data_1_originalPrice":    19.99,
		"data_1_discountPrice":    0.0,
		"data_1_releaseDate":      "2015-07-07T00:00:00Z",
		"data_1_isFreeNow":        false,
		"data_1_isUpcomingFree":   true,
		"data_1_promotionDetails": "Will be free next week",
		"data_1_url":              "https://www.epicgames.com/store/en-US/p/rocket-league",
		"data_1_productSlug":      "rocket-league",
		"data_1_images":           "https://cdn.epicgames.com/rocket-league/offer/keyart.jpg,https://cdn.epicgames.com/rocket-league/offer/cars.jpg",
		"data_1_source":           "epic_games_store",
		"source_type":             "epic_free_games_api",
		"timestamp":               src.Unix(),
	}
}

// Tools builds the package's mock tools against src.
func Tools(src *mockapi.Source) ([]mockmcp.Tool, error) {
	freeGames, err := mockmcp.NewTool(
		"get_epic_free_games",
		"Get the games currently (and optionally soon to be) free on the Epic Games Store.",
		func(_ context.Context, a FreeGamesArgs) (FreeGamesResult, error) {
			res := reshapeFreeGames(fetchFreeGames(src))
			if !a.IncludeUpcoming {
				kept := res.Data[:0]
				for _, g := range res.Data {
					if g.IsFreeNow {
						kept = append(kept, g)
					}
				}
				res.Data = kept
				res.Count = len(kept)
			}
			return res, nil
		},
		mockmcp.WithTags("gametrends"),
		mockmcp.WithStateful(),
	)
	if err != nil {
		return nil, err
	}

	addGame, err := mockmcp.NewTool(
		"add_game_to_library",
		"Add a game to the session library.",
		func(_ context.Context, a AddArgs) (AddResult, error) {
			return AddResult{
				Success: true,
				Item:    a.Item,
				Message: fmt.Sprintf("%s added to library", a.Item),
			}, nil
		},
		mockmcp.WithTags("gametrends"),
		mockmcp.WithStateful(),
	)
	if err != nil {
		return nil, err
	}

	inventory, err := mockmcp.NewTool(
		"get_library_inventory",
		"List the games in the session library.",
		func(_ context.Context, _ InventoryArgs) (InventoryResult, error) {
			// The dispatcher overlays the live inventory; the base response only
			// carries the envelope.
			return InventoryResult{Success: true, Inventory: []string{}}, nil
		},
		mockmcp.WithTags("gametrends"),
		mockmcp.WithStateful(),
	)
	if err != nil {
		return nil, err
	}

	return []mockmcp.Tool{freeGames, addGame, inventory}, nil
}

// reshapeFreeGames lifts the flat payload into the documented nested response.
// The comma-separated images field is split into a list; everything else passes
// through unchanged.
func reshapeFreeGames(flat mockapi.Flat) FreeGamesResult {
	games := make([]Game, 0, flat.Int("count"))
	for _, row := range []string{"data_0", "data_1"} {
		games = append(games, Game{
			ID:               flat.Str(row + "_id"),
			Name:             flat.Str(row + "_name"),
			Description:      flat.Str(row + "_description"),
			OriginalPrice:    flat.Float(row + "_originalPrice"),
			DiscountPrice:    flat.Float(row + "_discountPrice"),
			ReleaseDate:      flat.Str(row + "_releaseDate"),
			IsFreeNow:        flat.Bool(row + "_isFreeNow"),
			IsUpcomingFree:   flat.Bool(row + "_isUpcomingFree"),
			PromotionDetails: flat.Str(row + "_promotionDetails"),
			URL:              flat.Str(row + "_url"),
			ProductSlug:      flat.Str(row + "_productSlug"),
			Images:           strings.Split(flat.Str(row+"_images"), ","),
			Source:           flat.Str(row + "_source"),
		})
	}
	return FreeGamesResult{
		Success:    flat.Bool("success"),
		Platform:   flat.Str("platform"),
		Type:       flat.Str("type"),
		Count:      flat.Int("count"),
		Data:       games,
		SourceType: flat.Str("source_type"),
		Timestamp:  int64(flat.Int("timestamp")),
	}
}
