package main

import "github.com/horusvfx/playlist-api/cmd"

// @title           Review Playlist API
// @version         1.0.0
// @description     A playlist manager for review sessions with clip and timeline management
// @contact.name    API Support
// @contact.url     https://github.com/horusvfx/playlist-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
