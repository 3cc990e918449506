package main

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sublee/propagate"
)

//go:generate go run github.com/sublee/propagate/cmd/propagate

const jobsYAML = `
- name: backup
  schedule: every 6h
- name: migrate
  schedule: once
- name: report
  schedule: every fortnight
- name: cleanup
  schedule: paused disk maintenance
`

type job struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"`
}

func parseSchedule(s string) Schedule {
	verb, arg, _ := strings.Cut(s, " ")
	switch verb {
	case "once":
		return ScheduleOnce()
	case "paused":
		return SchedulePaused(arg)
	case "every":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return ScheduleMalformed(s, len(verb)+2)
		}
		return ScheduleEvery(d)
	}
	return ScheduleMalformed(s, 1)
}

func main() {
	var jobs []job
	if err := yaml.Unmarshal([]byte(jobsYAML), &jobs); err != nil {
		panic(err)
	}

	for _, j := range jobs {
		schedule := parseSchedule(j.Schedule)

		if every, ok := propagate.TakeGood[time.Duration](schedule).Get(); ok {
			fmt.Printf("%s: runs every %s\n", j.Name, every)
			continue
		}
		if propagate.IsGood(schedule) {
			fmt.Printf("%s: runs once\n", j.Name)
			continue
		}
		if bad, ok := propagate.TakeBad[propagate.Tuple2[string, int]](schedule).Get(); ok {
			s, col := bad.Unpack()
			fmt.Printf("%s: malformed schedule %q at column %d\n", j.Name, s, col)
			continue
		}

		reason, _ := schedule.Paused()
		fmt.Printf("%s: %s (%s)\n", j.Name, schedule, reason)
	}
}
