package main

import (
	protocol "currency-assistant/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeBot()
	if err != nil {
		logrus.Println(err)
	}
}
