package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/formkit/cmd/formkit/internal/replay"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay scripted input and print events",
		Long: `Build a form definition and drive it with a replay script on a manual
clock, printing every focus, blur and update event as it fires.

A script lays out fields and lists steps:

  layout:
    volume: {width: 200, height: 32}
  steps:
    - {field: volume, action: drag, x: 16, y: 16, to_x: 184, to_y: 16, wait: 300ms}
    - {field: nick, action: enter, value: ada}
    - {field: volume, action: key, key: ArrowUp, shift: true}

Actions are tap, drag, key, set, enter, clear, focus, blur and wait.`,
		Usage: "formkit replay <definition> <script>",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("definition and script are required\n\nUsage: formkit replay <definition> <script>")
	}
	script, err := replay.LoadFile(args[1])
	if err != nil {
		return err
	}

	player := replay.NewPlayer(os.Stdout)
	_, form, err := loadForm(args[0], player.Options(0))
	if err != nil {
		return err
	}
	defer form.Dispose()

	player.Attach(form)
	err = player.Run(form, script)
	player.Detach()
	if err != nil {
		return err
	}

	fmt.Println()
	printForm(newOutput(os.Stdout), form)
	return nil
}
