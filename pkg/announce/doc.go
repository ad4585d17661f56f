// Package announce manages advertisement sessions for DNS-SD
// services.
//
// A Session owns one dnssd.Service and drives its lifecycle flags;
// the actual broadcasting is delegated to a Responder, an injected
// start/stop capability. The Announcer is a registry of sessions that
// publishes services from configs and withdraws them together on
// shutdown.
//
// Record generation stays in package dnssd: a session only asks the
// service for its record set (as a preflight check and for loggers)
// and hands the service to the responder. The shipped
// ZeroconfResponder broadcasts via the enbility/zeroconf library;
// tests and custom transports implement Responder themselves.
package announce
