package app

import (
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/modules/antennas"
	"github.com/specialistvlad/puzzlegrid/modules/calibration"
	"github.com/specialistvlad/puzzlegrid/modules/dial"
	"github.com/specialistvlad/puzzlegrid/modules/diskmap"
	"github.com/specialistvlad/puzzlegrid/modules/guard"
	"github.com/specialistvlad/puzzlegrid/modules/lists"
	"github.com/specialistvlad/puzzlegrid/modules/mulscan"
	"github.com/specialistvlad/puzzlegrid/modules/pageorder"
	"github.com/specialistvlad/puzzlegrid/modules/reports"
	"github.com/specialistvlad/puzzlegrid/modules/wordsearch"
)

// coreModules is the definitive list of all modules that are compiled into
// the puzzlegrid binary.
var coreModules = []registry.Module{
	&dial.Module{},
	&lists.Module{},
	&reports.Module{},
	&mulscan.Module{},
	&wordsearch.Module{},
	&pageorder.Module{},
	&guard.Module{},
	&calibration.Module{},
	&antennas.Module{},
	&diskmap.Module{},
}
