package alien

import (
	"fmt"
	"time"

	"anoa.com/spacemanagement/internal/entity"
)

const unknownObserver = "an unknown observer"

func observer(username string) string {
	if username == "" {
		return unknownObserver
	}
	return username
}

func createdMessage(a *entity.Alien, username string, at time.Time) string {
	return fmt.Sprintf(
		"A never-before-seen alien was added to the map by %s, at positions: X: %g, Y: %g, Z: %g at %s UTC.",
		observer(username), a.XCoordinate, a.YCoordinate, a.ZCoordinate, at.UTC().Format(time.TimeOnly),
	)
}

func updatedMessage(a *entity.Alien, username string, at time.Time) string {
	return fmt.Sprintf(
		"The information of the alien named \"%s\" was modified by %s. Alien currently seen at positions: X: %g, Y: %g, Z: %g at %s UTC.",
		a.Name, observer(username), a.XCoordinate, a.YCoordinate, a.ZCoordinate, at.UTC().Format(time.TimeOnly),
	)
}

func deletedMessage(a *entity.Alien) string {
	return fmt.Sprintf("The alien named \"%s\" has vanished from sight and has been removed from the map.", a.Name)
}
