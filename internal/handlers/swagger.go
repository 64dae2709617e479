package handlers

// @title Project Lookup API
// @version 1.0
// @description Lists the 3D viewer projects stored for a user. Every response carries the same CORS headers.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name projects
// @tag.description Project lookup by user
