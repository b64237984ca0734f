package main

// @title Data manager API
// @version 1.0
// @description Lists currencies and converts amounts to the base currency

// @BasePath /
// @schemes http
import (
	_ "currency-assistant/docs"
	protocol "currency-assistant/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeData()
	if err != nil {
		logrus.Println(err)
	}
}
