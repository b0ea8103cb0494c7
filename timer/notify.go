package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/trssantos/wellness-tracker-sub005/internal/focus"
	"github.com/trssantos/wellness-tracker-sub005/internal/technique"
	"github.com/trssantos/wellness-tracker-sub005/internal/timeutil"
)

const sampleRate = beep.SampleRate(44100)

// Alerter announces that a countdown has finished.
type Alerter struct {
	notify  func(title, message string) error
	chime   func() error
	pending *focus.Status
	Notify  bool
	Sound   bool
}

// NewAlerter returns an alerter using desktop notifications and a generated
// chime.
func NewAlerter(notify, sound bool) *Alerter {
	return &Alerter{
		Notify: notify,
		Sound:  sound,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		chime: playChime,
	}
}

// Queue records a finished session for the timer to announce. It is meant to
// be registered as the engine's completion hook.
func (a *Alerter) Queue(st focus.Status) {
	a.pending = &st
}

func (a *Alerter) take() (focus.Status, bool) {
	if a.pending == nil {
		return focus.Status{}, false
	}

	st := *a.pending
	a.pending = nil

	return st, true
}

// Alert notifies the user about the finished session. Failures are logged.
func (a *Alerter) Alert(st focus.Status) {
	if a.Notify {
		title := technique.DisplayName(st.Technique) + " session complete"
		msg := fmt.Sprintf("You focused for %s. Time to review it.", timeutil.Human(st.Elapsed))

		if err := a.notify(title, msg); err != nil {
			slog.Error("unable to display notification", "error", err)
		}
	}

	if a.Sound {
		if err := a.chime(); err != nil {
			slog.Error("unable to play completion sound", "error", err)
		}
	}
}

// playChime plays two short descending tones and waits for them to finish.
func playChime() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}

	defer speaker.Close()

	var seq []beep.Streamer

	for _, freq := range []float64{880, 660} {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return err
		}

		seq = append(
			seq,
			beep.Take(sampleRate.N(200*time.Millisecond), tone),
			generators.Silence(sampleRate.N(80*time.Millisecond)),
		)
	}

	done := make(chan struct{})

	seq = append(seq, beep.Callback(func() {
		close(done)
	}))

	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(seq...),
		Base:     2,
		Volume:   -3,
	})

	<-done

	return nil
}

// RunSessionCmd executes the configured post-session command.
func RunSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
