package realtime

import (
	teamModel "github.com/trenchcomp/teams-service/internal/team/model"
)

// NoopBroadcaster discards all events. It stands in for the hub when the
// realtime layer is disabled so callers never branch on its presence;
// clients fall back to polling the feed endpoints.
type NoopBroadcaster struct{}

// PublishTeamCreated discards the event.
func (NoopBroadcaster) PublishTeamCreated(teamModel.TeamSummary) {}
