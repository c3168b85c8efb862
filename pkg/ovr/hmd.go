package ovr

// ProductNameString returns ProductName as a Go string.
func (d *HmdDesc) ProductNameString() string { return cstr(d.ProductName[:]) }

// ManufacturerString returns Manufacturer as a Go string.
func (d *HmdDesc) ManufacturerString() string { return cstr(d.Manufacturer[:]) }

// SerialNumberString returns SerialNumber as a Go string.
func (d *HmdDesc) SerialNumberString() string { return cstr(d.SerialNumber[:]) }
