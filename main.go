package main

import (
	"microblog/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
