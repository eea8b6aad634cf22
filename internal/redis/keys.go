package redis

// Key layout:
//
//	map:{id}                JSON map row
//	maps                    SET of map ids
//	map:{id}:tokens         HASH token id -> JSON token
//	map:{id}:zones          HASH zone id -> JSON locked zone
//	map:{id}:rest_points    HASH region id -> JSON circle region
//	map:{id}:churches       HASH region id -> JSON circle region
//	map:{id}:changes        STREAM of committed changes
//	map_live:{id}           pub/sub channel of ephemeral events
//	token:{id}:map          STRING owning map id
//	player:{id}:token       STRING token id of the player's token
//	profile:{id}            JSON profile
//	profiles                SET of profile ids
const (
	mapPrefix     = "map:"
	livePrefix    = "map_live:"
	tokenPrefix   = "token:"
	playerPrefix  = "player:"
	profilePrefix = "profile:"

	// MapIndexKey holds every map id.
	MapIndexKey = "maps"
	// ProfileIndexKey holds every profile id.
	ProfileIndexKey = "profiles"
)

// MapKey is the JSON row of a map.
func MapKey(mapID string) string { return mapPrefix + mapID }

// MapTokensKey is the hash of a map's tokens.
func MapTokensKey(mapID string) string { return mapPrefix + mapID + ":tokens" }

// MapZonesKey is the hash of a map's locked zones.
func MapZonesKey(mapID string) string { return mapPrefix + mapID + ":zones" }

// MapRestPointsKey is the hash of a map's rest points.
func MapRestPointsKey(mapID string) string { return mapPrefix + mapID + ":rest_points" }

// MapChurchesKey is the hash of a map's churches.
func MapChurchesKey(mapID string) string { return mapPrefix + mapID + ":churches" }

// MapChangesKey is the durable change stream of a map.
func MapChangesKey(mapID string) string { return mapPrefix + mapID + ":changes" }

// MapLiveChannel is the ephemeral pub/sub channel of a map.
func MapLiveChannel(mapID string) string { return livePrefix + mapID }

// TokenMapKey points from a token to its map.
func TokenMapKey(tokenID string) string { return tokenPrefix + tokenID + ":map" }

// PlayerTokenKey points from a player to their token.
func PlayerTokenKey(playerID string) string { return playerPrefix + playerID + ":token" }

// ProfileKey is the JSON row of a profile.
func ProfileKey(playerID string) string { return profilePrefix + playerID }
