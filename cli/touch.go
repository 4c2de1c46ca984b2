package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mobile-next/touchdrag/commands"
	"github.com/mobile-next/touchdrag/gestures"
	"github.com/mobile-next/touchdrag/types"
	"github.com/spf13/cobra"
)

var touchCmd = &cobra.Command{
	Use:   "touch <phase> <id> [x,y]",
	Short: "Send one touch event to a session",
	Long: `Sends a single touch event to a session on a running server.
Phase is one of started, moved, ended or cancelled. Coordinates are required for started and moved.
Coordinates starting with a minus sign must follow "--" so they are not read as flags.`,
	Example: `  touchdrag touch started 1 100,200 --session <id>
  touchdrag touch moved 1 110,205 --session <id>
  touchdrag touch moved 1 --session <id> -- -5,3
  touchdrag touch ended 1 --session <id>`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		point, err := parseTouchArgs(args)
		if err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		return remoteCall("touch.ingest", commands.TouchRequest{
			SessionID: sessionID,
			Events:    []types.TouchPoint{point},
		})
	},
}

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Consume the drag accumulated since the previous frame",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remoteCall("touch.drag", commands.DragRequest{SessionID: sessionID})
	},
}

var fingersCmd = &cobra.Command{
	Use:   "fingers",
	Short: "List the fingers currently down in a session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remoteCall("touch.fingers", commands.FingersRequest{SessionID: sessionID})
	},
}

func parseTouchArgs(args []string) (types.TouchPoint, error) {
	phase, err := gestures.ParsePhase(args[0])
	if err != nil {
		return types.TouchPoint{}, err
	}

	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return types.TouchPoint{}, fmt.Errorf("invalid finger id '%s': %w", args[1], err)
	}

	point := types.TouchPoint{ID: id, Phase: phase.String()}

	if len(args) < 3 {
		if phase == gestures.Started || phase == gestures.Moved {
			return types.TouchPoint{}, fmt.Errorf("coordinates are required for %s", phase)
		}
		return point, nil
	}

	point.X, point.Y, err = parseCoords(args[2])
	if err != nil {
		return types.TouchPoint{}, err
	}

	return point, nil
}

// parseCoords parses "x,y" into two floats
func parseCoords(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinates '%s', expected x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate '%s': %w", parts[0], err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate '%s': %w", parts[1], err)
	}

	return x, y, nil
}

func init() {
	rootCmd.AddCommand(touchCmd, dragCmd, fingersCmd)

	addSessionFlags(touchCmd)
	addSessionFlags(dragCmd)
	addSessionFlags(fingersCmd)
}
