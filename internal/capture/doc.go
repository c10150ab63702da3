// Package capture watches for capture devices via udev netlink events.
//
// The watch command uses the Monitor to start a scan automatically when a
// camera (video4linux by default) appears, so a kitchen kiosk can go from
// plugging in a phone or webcam to a running scan without a manual trigger.
// The monitor is best-effort: if the netlink socket cannot be opened, scans
// simply remain manual.
package capture
