package main

// @title Currency manager API
// @version 1.0
// @description Adds, updates and deletes currency rates

// @BasePath /
// @schemes http
import (
	_ "currency-assistant/docs"
	protocol "currency-assistant/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeManager()
	if err != nil {
		logrus.Println(err)
	}
}
