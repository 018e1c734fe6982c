package constant

// AsciiArtLogo is the application's banner printed above the root help.
const AsciiArtLogo = `
 __   _____  ___  _  _ _   _ ___
 \ \ / / _ \|   \| || | | | | _ )
  \ V / (_) | |) | __ | |_| | _ \
   \_/ \___/|___/|_||_|\___/|___/`
