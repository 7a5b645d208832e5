package main

// @title Game Link Finder APIs
// @version 1.0
// @description Catalog API and LINE webhook of the game store-link finder.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "gamelink-finder/docs"
	protocol "gamelink-finder/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
