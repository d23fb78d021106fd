// Package agora provides top-level metadata for the Agora API.
//
// @title Agora API
// @version 0.1.0
// @description Authorization-aware domain API and live GraphQL subscription streams.
// @BasePath /
// @securityDefinitions.apikey ViewerAuth
// @in header
// @name Authorization
// @description Provide the viewer bearer token as `Bearer <token>`.
package agora
