package main

import (
	"github.com/AndriiHamasa/lunchify/internal/apiserver"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/version"
)

func main() {
	version.CheckVersionAndExit()
	apiserver.NewApp("lunchify-apiserver").Run()
}
