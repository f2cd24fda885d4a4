// Package register adds entries to a plugin's Config.php. It ties the
// registry loader, the duplicate guard and the text mutator together so
// generators only decide what to register, not how.
package register
