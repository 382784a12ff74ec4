package options

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// GameKey is the section name under which a multi-game player file keeps
// this game's options.
const GameKey = "Celeste"

// Player is one decoded player file.
type Player struct {
	Name    string
	Options Options
}

// LoadPlayer decodes a YAML player file. Options may sit at the top level
// or under a "Celeste" section; absent keys keep their defaults and every
// value is clamped.
func LoadPlayer(r io.Reader) (Player, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Player{Options: Defaults()}, nil
		}
		return Player{}, fmt.Errorf("options: decode player file: %w", err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return Player{}, fmt.Errorf("%w: player file must be a mapping", ErrInvalidOption)
	}

	var p Player
	section := doc
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]
		switch key.Value {
		case "name":
			p.Name = val.Value
		case GameKey:
			section = val
		}
	}

	p.Options = Defaults()
	if err := section.Decode(&p.Options); err != nil {
		return Player{}, fmt.Errorf("options: decode options: %w", err)
	}
	p.Options = p.Options.Clamp()

	return p, nil
}

// LoadPlayerFile reads a player file from disk.
func LoadPlayerFile(path string) (Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return Player{}, fmt.Errorf("options: open player file: %w", err)
	}
	defer f.Close()

	return LoadPlayer(f)
}
