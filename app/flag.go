package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	techniqueFlag = &cli.StringFlag{
		Name:    "technique",
		Aliases: []string{"t"},
		Usage:   "Focus technique to use (see the techniques command)",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Countdown length in minutes, or a duration such as 1h30m",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "Count down to a time of day (e.g. '5pm', '17:30')",
	}

	objectiveFlag = &cli.StringFlag{
		Name:    "objective",
		Aliases: []string{"o"},
		Usage:   "What this session is for",
	}

	taskFlag = &cli.StringSliceFlag{
		Name:  "task",
		Usage: "Add an ad-hoc task to the session. Can be repeated",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Checklist date in YYYY-MM-DD format (default: today)",
	}

	noChecklistFlag = &cli.BoolFlag{
		Name:  "no-checklist",
		Usage: "Do not offer the unchecked checklist items of the date as session tasks",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a session is saved",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears when a countdown ends",
	}

	disableSoundFlag = &cli.BoolFlag{
		Name:  "disable-sound",
		Usage: "Disable the chime that plays when a countdown ends",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: day, week, month, year or all",
		Value:   "week",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started after this time (e.g. '3 days ago'). Overrides --period",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of a table",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	undoFlag = &cli.BoolFlag{
		Name:  "undo",
		Usage: "Uncheck the item instead",
	}

	moodFlag = &cli.StringFlag{
		Name:  "mood",
		Usage: "How you feel today",
	}

	energyFlag = &cli.IntFlag{
		Name:  "energy",
		Usage: "Energy level from 1 to 10",
		Value: 5,
	}

	contextFlag = &cli.StringFlag{
		Name:  "context",
		Usage: "Anything else the generated tasks should take into account",
	}

	compressFlag = &cli.BoolFlag{
		Name:    "compress",
		Aliases: []string{"z"},
		Usage:   "Compress the export with zstd. Implied by a .zst file extension",
	}
)
