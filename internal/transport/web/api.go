package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck"
)

func (s *Server) registerAPI(api *gin.RouterGroup) {
	api.GET("/maps", s.listMaps)
	api.POST("/maps", s.saveMap)
	api.PUT("/maps/:id", s.saveMap)
	api.DELETE("/maps/:id", s.deleteMap)
	api.PUT("/maps/:id/embed", s.setEmbed)

	api.POST("/maps/:id/zones", s.saveZone)
	api.PUT("/maps/:id/zones/:zone", s.saveZone)
	api.DELETE("/maps/:id/zones/:zone", s.deleteZone)

	api.POST("/maps/:id/regions", s.saveRegion)
	api.PUT("/maps/:id/regions/:region", s.saveRegion)
	api.DELETE("/maps/:id/regions/:kind/:region", s.deleteRegion)

	api.POST("/maps/:id/players", s.addPlayer)
	api.POST("/maps/:id/npcs", s.addNPC)
	api.DELETE("/tokens/:id", s.removeToken)
	api.PUT("/tokens/:id/radius", s.updateRadius)

	api.GET("/travel-logs", s.listTravelLogs)
	api.GET("/rest-zone", s.restZone)
	api.POST("/prayers", s.submitPrayer)
	api.POST("/skills/grants", s.grantSkill)
}

func caller(c *gin.Context) entities.Capability {
	capability, _ := c.MustGet(capabilityKey).(entities.Capability)
	return capability
}

// bind decodes the JSON body, reporting malformed input as InvalidArgument.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		abort(c, errors.InvalidArgumentf("malformed request: %v", err))
		return false
	}
	return true
}

func (s *Server) listMaps(c *gin.Context) {
	out, err := s.mapAdmin.ListMaps(c.Request.Context(), &mapadmin.ListMapsInput{Capability: caller(c)})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"maps": out.Maps})
}

func (s *Server) saveMap(c *gin.Context) {
	var m entities.Map
	if !bind(c, &m) {
		return
	}
	if id := c.Param("id"); id != "" {
		m.ID = id
	}

	out, err := s.mapAdmin.SaveMap(c.Request.Context(), &mapadmin.SaveMapInput{Capability: caller(c), Map: &m})
	if err != nil {
		abort(c, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"map": out.Map})
}

func (s *Server) deleteMap(c *gin.Context) {
	_, err := s.mapAdmin.DeleteMap(c.Request.Context(), &mapadmin.DeleteMapInput{
		Capability: caller(c),
		MapID:      c.Param("id"),
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) setEmbed(c *gin.Context) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if !bind(c, &body) {
		return
	}

	out, err := s.mapAdmin.SetEmbed(c.Request.Context(), &mapadmin.SetEmbedInput{
		Capability: caller(c),
		MapID:      c.Param("id"),
		Enabled:    body.Enabled,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"map": out.Map})
}

func (s *Server) saveZone(c *gin.Context) {
	var zone entities.LockedZone
	if !bind(c, &zone) {
		return
	}
	zone.MapID = c.Param("id")
	zone.ID = c.Param("zone")

	out, err := s.mapAdmin.SaveLockedZone(c.Request.Context(), &mapadmin.SaveLockedZoneInput{
		Capability: caller(c),
		Zone:       &zone,
	})
	if err != nil {
		abort(c, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"zone": out.Zone})
}

func (s *Server) deleteZone(c *gin.Context) {
	_, err := s.mapAdmin.DeleteLockedZone(c.Request.Context(), &mapadmin.DeleteLockedZoneInput{
		Capability: caller(c),
		MapID:      c.Param("id"),
		ZoneID:     c.Param("zone"),
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) saveRegion(c *gin.Context) {
	var region entities.CircleRegion
	if !bind(c, &region) {
		return
	}
	region.MapID = c.Param("id")
	region.ID = c.Param("region")

	out, err := s.mapAdmin.SaveRegion(c.Request.Context(), &mapadmin.SaveRegionInput{
		Capability: caller(c),
		Region:     &region,
	})
	if err != nil {
		abort(c, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"region": out.Region})
}

func (s *Server) deleteRegion(c *gin.Context) {
	_, err := s.mapAdmin.DeleteRegion(c.Request.Context(), &mapadmin.DeleteRegionInput{
		Capability: caller(c),
		MapID:      c.Param("id"),
		Kind:       entities.RegionKind(c.Param("kind")),
		RegionID:   c.Param("region"),
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addPlayerRequest struct {
	PlayerID       string          `json:"player_id"`
	Position       *geofence.Point `json:"position"`
	OriginURL      string          `json:"origin_url"`
	DestinationURL string          `json:"destination_url"`
}

func (s *Server) addPlayer(c *gin.Context) {
	var body addPlayerRequest
	if !bind(c, &body) {
		return
	}

	var evidence *movement.RoleplayEvidence
	if body.OriginURL != "" || body.DestinationURL != "" {
		evidence = &movement.RoleplayEvidence{OriginURL: body.OriginURL, DestinationURL: body.DestinationURL}
	}

	out, err := s.movement.AddPlayerToMap(c.Request.Context(), &movement.AddPlayerToMapInput{
		Capability: caller(c),
		PlayerID:   body.PlayerID,
		MapID:      c.Param("id"),
		Position:   body.Position,
		Evidence:   evidence,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":           out.Token,
		"previous_map_id": out.PreviousMapID,
		"move_type":       out.MoveType,
		"charge":          out.Charge,
	})
}

type addNPCRequest struct {
	Name              string  `json:"name"`
	ImageURL          string  `json:"image_url"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	InteractionRadius float64 `json:"interaction_radius"`
}

func (s *Server) addNPC(c *gin.Context) {
	var body addNPCRequest
	if !bind(c, &body) {
		return
	}

	out, err := s.movement.AddNPCToMap(c.Request.Context(), &movement.AddNPCToMapInput{
		Capability:        caller(c),
		MapID:             c.Param("id"),
		Name:              body.Name,
		ImageURL:          body.ImageURL,
		X:                 body.X,
		Y:                 body.Y,
		InteractionRadius: body.InteractionRadius,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": out.Token})
}

func (s *Server) removeToken(c *gin.Context) {
	_, err := s.movement.RemoveToken(c.Request.Context(), &movement.RemoveTokenInput{
		Capability: caller(c),
		TokenID:    c.Param("id"),
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateRadius(c *gin.Context) {
	var body struct {
		Radius float64 `json:"radius"`
	}
	if !bind(c, &body) {
		return
	}

	out, err := s.movement.UpdateNPCRadius(c.Request.Context(), &movement.UpdateNPCRadiusInput{
		Capability: caller(c),
		TokenID:    c.Param("id"),
		Radius:     body.Radius,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": out.Token})
}

func (s *Server) listTravelLogs(c *gin.Context) {
	page := 0
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			abort(c, errors.InvalidArgument("page must be a non-negative integer"))
			return
		}
		page = p
	}

	out, err := s.movement.ListTravelLogs(c.Request.Context(), &movement.ListTravelLogsInput{
		Capability: caller(c),
		PlayerID:   c.Query("player_id"),
		Page:       page,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": out.Logs, "has_more": out.HasMore})
}

func (s *Server) restZone(c *gin.Context) {
	out, err := s.presence.InRestZone(c.Request.Context(), &presence.InRestZoneInput{
		PlayerID: caller(c).PlayerID,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_rest_zone": out.InRestZone, "map_id": out.MapID})
}

func (s *Server) submitPrayer(c *gin.Context) {
	var body struct {
		EvidenceURLs []string `json:"evidence_urls"`
	}
	if !bind(c, &body) {
		return
	}

	out, err := s.presence.SubmitPrayer(c.Request.Context(), &presence.SubmitPrayerInput{
		Capability:   caller(c),
		EvidenceURLs: body.EvidenceURLs,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gained":     out.Gained,
		"sanity":     out.Sanity,
		"max_sanity": out.MaxSanity,
		"church_id":  out.ChurchID,
	})
}

type grantRequest struct {
	PlayerID  string `json:"player_id"`
	SkillID   string `json:"skill_id"`
	SkillName string `json:"skill_name"`
	Note      string `json:"note"`
}

func (s *Server) grantSkill(c *gin.Context) {
	var body grantRequest
	if !bind(c, &body) {
		return
	}

	out, err := s.skillCheck.Grant(c.Request.Context(), &skillcheck.GrantInput{
		Capability: caller(c),
		PlayerID:   body.PlayerID,
		SkillID:    body.SkillID,
		SkillName:  body.SkillName,
		Note:       body.Note,
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": out.Record})
}
