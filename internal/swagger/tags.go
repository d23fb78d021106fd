package swagger

// @Tag.name Agora Meta
// @Tag.description Operational probes and metadata about the service.

// @Tag.name Viewers Auth
// @Tag.description Token issuance for viewers.

// @Tag.name Viewers
// @Tag.description Viewer profiles, gated by the authorization rules.

// @Tag.name Work Teams
// @Tag.description Work teams, their membership and team notifications.

// @Tag.name Activities
// @Tag.description The activity feed, scoped to the viewer's work teams.

// @Tag.name Flags
// @Tag.description Statement flags raised by voters and solved by moderators.

// @Tag.name Live
// @Tag.description GraphQL subscriptions streamed as server-sent events or over a WebSocket.
