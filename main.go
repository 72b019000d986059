package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
)

// basicface -config={config file}

func watchSignals(comms commChannels) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigs:
			log.Printf("Got %v, shutting down", s)
			comms.shutdown()
		case <-comms.quit:
		}
		signal.Stop(sigs)
	}()
}

func main() {
	cfgFile := flag.String("config", defaultConfigFile, "config file path")
	toStdout := flag.Bool("stdout", false, "also log to stdout")
	flag.Parse()

	settings, err := loadSettings(*cfgFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	logFile, err := setupLogging(settings, *toStdout)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logFile.Close()

	// dump them (debugging)
	log.Println(">>> Settings <<<")
	settings.Dump()
	log.Println(">>> Settings <<<")

	rt, err := initRuntime(settings, clockwork.NewRealClock())
	if err != nil {
		log.Fatal(err.Error())
	}

	watchSignals(rt.comms)

	startBatteryWatcher(rt)
	startWatchButtons(rt)
	startFace(rt)

	log.Printf("Done initializing: display %s, buttons %s, battery %s",
		settings.GetString(sDisplay), settings.GetString(sButtons), settings.GetString(sBattery))

	wg.Wait()
	log.Println("bye")
}
