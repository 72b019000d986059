package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
)

const defaultConfigFile = "/etc/default/basicface/basicface.conf"

// settings keys
const (
	sLogFile      = "logFile"
	sLogMaxSize   = "logMaxSize"
	sDebug        = "debug"
	sClock24h     = "clock24h"
	sDisplay      = "display"
	sButtons      = "buttons"
	sBattery      = "battery"
	sWidth        = "width"
	sHeight       = "height"
	sUpBtn        = "upButton"
	sSelectBtn    = "selectButton"
	sDownBtn      = "downButton"
	sUPSBus       = "upsBus"
	sUPSAddr      = "upsAddress"
	sBatteryIndex = "batteryIndex"
	sOLEDBus      = "oledBus"
	sBatteryPoll  = "batteryPoll"
)

// how a physical (or simulated) button is wired
type buttonMap struct {
	pin    int
	key    string
	pullup bool
}

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sLogFile] = "/var/log/basicface.log"
	s[sLogMaxSize] = 5 // megabytes
	s[sDebug] = false
	s[sClock24h] = true
	s[sDisplay] = "term"
	s[sButtons] = "keys"
	s[sBattery] = "none"
	s[sWidth] = 144
	s[sHeight] = 168
	s[sUpBtn] = buttonMap{pin: 17, key: "k", pullup: true}
	s[sSelectBtn] = buttonMap{pin: 27, key: "s", pullup: true}
	s[sDownBtn] = buttonMap{pin: 22, key: "j", pullup: true}
	s[sUPSBus] = ""
	s[sUPSAddr] = byte(0x43)
	s[sBatteryIndex] = 0
	s[sOLEDBus] = ""
	s[sBatteryPoll], _ = time.ParseDuration("5s")

	return configSettings{settings: s}
}

func parseByte(val []byte, dataType jsonparser.ValueType) (byte, error) {
	switch dataType {
	case jsonparser.Number:
		v, err := jsonparser.ParseInt(val)
		if err != nil {
			return 0, err
		}
		if v < 0 || v > 0xff {
			return 0, fmt.Errorf("%d out of range for a byte", v)
		}
		return byte(v), nil
	case jsonparser.String:
		// allows "0x43"
		v, err := strconv.ParseUint(string(val), 0, 8)
		if err != nil {
			return 0, err
		}
		return byte(v), nil
	default:
		return 0, fmt.Errorf("bad type for byte: %s", dataType)
	}
}

func parseBool(val []byte, dataType jsonparser.ValueType) (bool, error) {
	switch dataType {
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(val)
	case jsonparser.String:
		switch strings.ToLower(string(val)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("bad bool value: %s", string(val))
}

func parseButtonMap(val []byte, initVal buttonMap) (buttonMap, error) {
	bm := initVal
	if pin, err := jsonparser.GetInt(val, "pin"); err == nil {
		bm.pin = int(pin)
	}
	if key, err := jsonparser.GetString(val, "key"); err == nil {
		if len(key) != 1 {
			return bm, fmt.Errorf("button key must be a single character, got %q", key)
		}
		bm.key = key
	}
	if v, dataType, _, err := jsonparser.Get(val, "pullup"); err == nil {
		pullup, err := parseBool(v, dataType)
		if err != nil {
			return bm, err
		}
		bm.pullup = pullup
	}
	return bm, nil
}

func (s configSettings) settingsFromJSON(data []byte) error {
	// a broken file would otherwise look like one with every key missing
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		return nil
	})
	if err != nil {
		return fmt.Errorf("malformed settings: %w", err)
	}

	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		val, dataType, _, err := jsonparser.Get(data, k)
		if dataType == jsonparser.NotExist {
			// ignore missing fields
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}

		switch iv := initVal.(type) {
		case byte:
			s.settings[k], err = parseByte(val, dataType)
		case int:
			var v int64
			v, err = jsonparser.ParseInt(val)
			s.settings[k] = int(v)
		case bool:
			s.settings[k], err = parseBool(val, dataType)
		case time.Duration:
			var d time.Duration
			d, err = time.ParseDuration(string(val))
			if err == nil && d <= 0 {
				err = fmt.Errorf("%s is not a positive duration", d)
			}
			s.settings[k] = d
		case string:
			s.settings[k], err = jsonparser.ParseString(val)
		case buttonMap:
			if dataType != jsonparser.Object {
				err = fmt.Errorf("expected an object, got %s", dataType)
				break
			}
			s.settings[k], err = parseButtonMap(val, iv)
		default:
			err = fmt.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

func loadSettings(cfgFile string) (configSettings, error) {
	s := defaultSettings()

	data, err := ioutil.ReadFile(cfgFile)
	if err != nil {
		return s, fmt.Errorf("could not load conf file '%s': %w", cfgFile, err)
	}

	log.Printf("Reading configuration from '%s'", cfgFile)

	if err := s.settingsFromJSON(data); err != nil {
		return s, fmt.Errorf("bad conf file '%s': %w", cfgFile, err)
	}

	return s, nil
}

// copy so tests can tweak values without touching the shared settings
func (s configSettings) clone() configSettings {
	c := make(map[string]interface{}, len(s.settings))
	for k, v := range s.settings {
		c[k] = v
	}
	return configSettings{settings: c}
}

func (s configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

func (s configSettings) GetButtonMap(key string) buttonMap {
	switch v := s.settings[key].(type) {
	case buttonMap:
		return v
	default:
		return buttonMap{}
	}
}

func (s configSettings) GetAllButtonNames() []string {
	return []string{sUpBtn, sSelectBtn, sDownBtn}
}

func (s configSettings) Dump() {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Printf("%s : %T: %+v", k, s.settings[k], s.settings[k])
	}
}
