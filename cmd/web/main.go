package main

import "eventcms_backend/internal/app"

func main() {
	app.Run()
}
