package collector

const (
	cpuInfoPath = "/proc/cpuinfo"
	dmiPath     = "/sys/class/dmi/id/"
)

// fact maps a report field to the pseudo-file it is read from. Entries
// with a keyword are looked up as "label: value" lines; the rest are
// single-value files read whole.
type fact struct {
	field   string
	path    string
	keyword string
}

var cpuFacts = []fact{
	{field: "cpu_name", path: cpuInfoPath, keyword: "model name"},
	{field: "cpu_cores", path: cpuInfoPath, keyword: "cpu cores"},
	{field: "cpu_vendor", path: cpuInfoPath, keyword: "vendor_id"},
}

var biosFacts = []fact{
	{field: "bios_vendor", path: dmiPath + "bios_vendor"},
	{field: "bios_version", path: dmiPath + "bios_version"},
	{field: "bios_date", path: dmiPath + "bios_date"},
	{field: "bios_release", path: dmiPath + "bios_release"},
}

var boardFacts = []fact{
	{field: "board_name", path: dmiPath + "board_name"},
	{field: "board_vendor", path: dmiPath + "board_vendor"},
	{field: "sys_vendor", path: dmiPath + "sys_vendor"},
	{field: "product_name", path: dmiPath + "product_name"},
}

// lookup reads every entry independently; a failed entry never affects
// its neighbours.
func (c *Collector) lookup(facts []fact) map[string]string {
	values := make(map[string]string, len(facts))
	for _, f := range facts {
		if f.keyword != "" {
			values[f.field] = c.keyedLine(f.field, f.path, f.keyword)
		} else {
			values[f.field] = c.firstLine(f.field, f.path)
		}
	}
	return values
}

func (c *Collector) collectCPU() CPU {
	v := c.lookup(cpuFacts)
	return CPU{
		Name:   v["cpu_name"],
		Cores:  v["cpu_cores"],
		Vendor: v["cpu_vendor"],
	}
}

func (c *Collector) collectBIOS() BIOS {
	v := c.lookup(biosFacts)
	return BIOS{
		Vendor:  v["bios_vendor"],
		Version: v["bios_version"],
		Date:    v["bios_date"],
		Release: v["bios_release"],
	}
}

func (c *Collector) collectMotherboard() Motherboard {
	v := c.lookup(boardFacts)
	return Motherboard{
		Name:         v["board_name"],
		Vendor:       v["board_vendor"],
		SystemVendor: v["sys_vendor"],
		ProductName:  v["product_name"],
	}
}
